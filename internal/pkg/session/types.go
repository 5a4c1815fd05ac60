// internal/pkg/session/types.go
package session

import "time"

// Data is one live session record as stored in redis.
type Data struct {
	JTI      string `json:"jti"`
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`

	LoginAt   time.Time `json:"login_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Event describes a session transition delivered to subscribers.
type Event struct {
	Type    EventType `json:"type"`
	Session *Data     `json:"session,omitempty"`
	UserID  string    `json:"user_id"`
}

type EventType string

const (
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
)
