package feed

import (
	"sync"
	"time"
)

// Event types published on catalog changes
const (
	EventProductCreated = "product_created"
	EventProductUpdated = "product_updated"
	EventProductDeleted = "product_deleted"
)

const defaultBuffer = 100

// Message represents a message sent over WebSocket
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

// Client is a single feed subscriber. Send is closed when the client is
// unregistered or dropped for falling behind.
type Client struct {
	Username string
	send     chan Message
}

// Send returns the channel of messages queued for the client
func (c *Client) Send() <-chan Message {
	return c.send
}

// Hub fans catalog events out to subscribers
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	buffer  int
	closed  bool
}

func NewHub() *Hub {
	return NewHubWithBuffer(defaultBuffer)
}

// NewHubWithBuffer sets the per-client queue length
func NewHubWithBuffer(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		clients: make(map[*Client]struct{}),
		buffer:  buffer,
	}
}

// Register adds a subscriber. It returns nil once the hub is closed.
func (h *Hub) Register(username string) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}

	client := &Client{
		Username: username,
		send:     make(chan Message, h.buffer),
	}
	h.clients[client] = struct{}{}
	return client
}

// Unregister removes a subscriber; calling it twice is harmless
func (h *Hub) Unregister(client *Client) {
	if client == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(client)
}

func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

// Publish queues an event for every subscriber without blocking.
// Subscribers whose queue is full are dropped. Returns the number of
// subscribers that received the message.
func (h *Hub) Publish(eventType string, data interface{}) int {
	msg := Message{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for client := range h.clients {
		select {
		case client.send <- msg:
			delivered++
		default:
			h.remove(client)
		}
	}
	return delivered
}

// ClientCount returns the number of active subscribers
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every subscriber and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.remove(client)
	}
	h.closed = true
}
