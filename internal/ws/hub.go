// internal/ws/hub.go
package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Hub fans claim events out to connected back-office clients, scoped per
// tenant so one company never sees another's events.
type Hub struct {
	// Registered clients by tenant ID
	clients map[string]map[*Client]bool
	mu      sync.RWMutex

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]bool),
		logger:  logger,
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.tenantID] == nil {
		h.clients[c.tenantID] = make(map[*Client]bool)
	}
	h.clients[c.tenantID][c] = true
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clients[c.tenantID]; ok {
		if set[c] {
			delete(set, c)
			close(c.send)
		}
		if len(set) == 0 {
			delete(h.clients, c.tenantID)
		}
	}
}

// Publish sends one event to every client of the tenant. Slow clients are
// dropped rather than allowed to block the caller.
func (h *Hub) Publish(tenantID string, event interface{}) {
	raw, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[tenantID] {
		select {
		case c.send <- raw:
		default:
			h.logger.Warn("dropping slow websocket client",
				zap.String("tenant_id", tenantID),
			)
			go c.conn.Close()
		}
	}
}

// ClientCount reports connected clients for a tenant.
func (h *Hub) ClientCount(tenantID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[tenantID])
}
