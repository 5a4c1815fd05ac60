// internal/ws/hub_test.go
package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dialHub(t *testing.T, hub *Hub, tenantID string) *websocket.Conn {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		hub.ServeWS(c, tenantID)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, tenantID string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount(tenantID) < n {
		if time.Now().After(deadline) {
			t.Fatalf("tenant %s never reached %d clients", tenantID, n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPublishReachesTenantClients(t *testing.T) {
	hub := NewHub(zap.NewNop())
	conn := dialHub(t, hub, "t1")
	waitForClients(t, hub, "t1", 1)

	hub.Publish("t1", map[string]string{"type": "status_changed", "claim_id": "c1"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "status_changed", got["type"])
	assert.Equal(t, "c1", got["claim_id"])
}

func TestPublishIsScopedPerTenant(t *testing.T) {
	hub := NewHub(zap.NewNop())
	other := dialHub(t, hub, "t2")
	waitForClients(t, hub, "t2", 1)

	hub.Publish("t1", map[string]string{"type": "claim_deleted"})

	// The other tenant's client must not receive anything.
	require.NoError(t, other.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := other.ReadMessage()
	assert.Error(t, err, "expected a read timeout, not a delivered event")
}

func TestClientCountTracksDisconnects(t *testing.T) {
	hub := NewHub(zap.NewNop())
	conn := dialHub(t, hub, "t1")
	waitForClients(t, hub, "t1", 1)

	require.NoError(t, conn.Close())

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount("t1") != 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never unregistered after disconnect")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
