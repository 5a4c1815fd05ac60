// internal/pkg/session/manager.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Manager owns the process-wide session state. Sessions live in redis with a
// TTL equal to the remaining token lifetime; nothing else mutates them.
// Subscribers are invoked on every transition (sign-in, sign-out).
type Manager struct {
	client *redis.Client

	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
}

func NewManager(client *redis.Client) *Manager {
	return &Manager{
		client: client,
		subs:   make(map[int]func(Event)),
	}
}

func (m *Manager) sessionKey(userID, jti string) string {
	return fmt.Sprintf("session:%s:%s", userID, jti)
}

// Create stores a new session in redis and notifies subscribers.
func (m *Manager) Create(ctx context.Context, s *Data) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := m.sessionKey(s.UserID, s.JTI)
	if err := m.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}

	m.notify(Event{Type: EventSignedIn, Session: s, UserID: s.UserID})
	return nil
}

// Get retrieves a session. A missing key means the session was revoked or
// has expired.
func (m *Manager) Get(ctx context.Context, userID, jti string) (*Data, error) {
	raw, err := m.client.Get(ctx, m.sessionKey(userID, jti)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("session not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var s Data
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

// Invalidate removes one session and notifies subscribers.
func (m *Manager) Invalidate(ctx context.Context, userID, jti string) error {
	if err := m.client.Del(ctx, m.sessionKey(userID, jti)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	m.notify(Event{Type: EventSignedOut, UserID: userID})
	return nil
}

// InvalidateAll removes every session for a user. Used for the forced
// sign-out when the user row has been removed.
func (m *Manager) InvalidateAll(ctx context.Context, userID string) error {
	pattern := fmt.Sprintf("session:%s:*", userID)
	iter := m.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := m.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete session %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan sessions: %w", err)
	}
	m.notify(Event{Type: EventSignedOut, UserID: userID})
	return nil
}

// Subscribe registers a callback invoked on every session transition. The
// returned function unsubscribes; callers must invoke it on shutdown.
func (m *Manager) Subscribe(fn func(Event)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

func (m *Manager) notify(ev Event) {
	m.mu.Lock()
	fns := make([]func(Event), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
