package handlers

import (
	"net/http"
	"time"

	"product-catalog/internal/api/feed"
	"product-catalog/internal/api/interfaces"
	"product-catalog/internal/api/middlewares"
	"product-catalog/internal/api/models"
	"product-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// EventSubscribed is the first message on a fresh feed connection
const EventSubscribed = "subscribed"

func newUpgrader(services interfaces.Services) websocket.Upgrader {
	cors := services.GetConfig().API.CORS
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || gin.Mode() != gin.ReleaseMode {
				return true
			}
			for _, allowed := range cors.AllowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
	}
}

// ProductFeedWebSocket streams catalog changes to an authenticated subscriber
func ProductFeedWebSocket(services interfaces.Services) gin.HandlerFunc {
	upgrader := newUpgrader(services)
	log := services.GetLogger().WithComponent("feed")

	return func(c *gin.Context) {
		principal, ok := middlewares.CurrentPrincipal(c)
		if !ok {
			c.Header("WWW-Authenticate", "Bearer")
			respondError(c, models.NewAPIError(models.ErrCodeUnauthorized, models.MsgNotAuthenticated, http.StatusUnauthorized))
			return
		}

		hub := services.Hub()
		client := hub.Register(principal.Username)
		if client == nil {
			respondError(c, models.NewAPIError(models.ErrCodeServiceUnavailable, "Feed is shutting down", http.StatusServiceUnavailable))
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			hub.Unregister(client)
			log.Error("WebSocket upgrade failed: %v", err)
			return
		}

		log.Info("Feed subscriber connected", "username", principal.Username, "client_ip", c.ClientIP())

		go readPump(conn, hub, client, log)
		writePump(conn, hub, client, log)

		log.Info("Feed subscriber disconnected", "username", principal.Username)
	}
}

// readPump drains client frames so control messages are processed, and
// unregisters the client when the peer goes away.
func readPump(conn *websocket.Conn, hub *feed.Hub, client *feed.Client, log *logger.Logger) {
	defer hub.Unregister(client)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warning("WebSocket read error: %v", err)
			}
			return
		}
	}
}

func writePump(conn *websocket.Conn, hub *feed.Hub, client *feed.Client, log *logger.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		hub.Unregister(client)
		conn.Close()
	}()

	welcome := feed.Message{
		Type:      EventSubscribed,
		Data:      gin.H{"username": client.Username},
		Timestamp: time.Now().Unix(),
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(welcome); err != nil {
		return
	}

	for {
		select {
		case message, ok := <-client.Send():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Unregistered, dropped as too slow, or hub closed
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			if err := conn.WriteJSON(message); err != nil {
				log.Error("WebSocket write error: %v", err)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
