package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"product-catalog/internal/api/feed"
	"product-catalog/internal/api/handlers"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialFeed(t *testing.T, server *httptest.Server, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/products"
	if token != "" {
		wsURL += "?token=" + token
	}
	return websocket.DefaultDialer.Dial(wsURL, nil)
}

func readMessage(t *testing.T, conn *websocket.Conn) feed.Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg feed.Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestProductFeed(t *testing.T) {
	s := newTestServer(t)
	server := httptest.NewServer(s.router)
	defer server.Close()

	token := s.registerAndLogin(t, "alice", "wonderland")

	conn, _, err := dialFeed(t, server, token)
	require.NoError(t, err)
	defer conn.Close()

	welcome := readMessage(t, conn)
	assert.Equal(t, handlers.EventSubscribed, welcome.Type)
	assert.Equal(t, 1, s.services.Hub().ClientCount())

	w := s.do(t, http.MethodPost, "/product", `{"name":"Desk lamp","price":25}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	msg := readMessage(t, conn)
	assert.Equal(t, feed.EventProductCreated, msg.Type)
	data, ok := msg.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Desk lamp", data["name"])

	require.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, "/product/1", "", token).Code)
	msg = readMessage(t, conn)
	assert.Equal(t, feed.EventProductDeleted, msg.Type)

	raw, err := json.Marshal(msg.Data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, string(raw))
}

func TestProductFeedRequiresToken(t *testing.T) {
	s := newTestServer(t)
	server := httptest.NewServer(s.router)
	defer server.Close()

	tests := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"invalid", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, resp, err := dialFeed(t, server, tt.token)
			if conn != nil {
				conn.Close()
			}
			require.ErrorIs(t, err, websocket.ErrBadHandshake)
			require.NotNil(t, resp)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Zero(t, s.services.Hub().ClientCount())
		})
	}
}

func TestProductFeedClosedOnStop(t *testing.T) {
	s := newTestServer(t)
	server := httptest.NewServer(s.router)
	defer server.Close()

	token := s.registerAndLogin(t, "alice", "wonderland")
	conn, _, err := dialFeed(t, server, token)
	require.NoError(t, err)
	defer conn.Close()
	readMessage(t, conn)

	s.services.Stop()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
}
