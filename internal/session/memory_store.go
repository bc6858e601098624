package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultCapacity bounds the number of concurrent sessions. The
	// bound is a DoS guard, not a business rule; the oldest entry is
	// evicted when it is exceeded.
	DefaultCapacity = 1000

	// DefaultTTL is how long a session record stays valid.
	DefaultTTL = 60 * time.Minute

	// id generation retries before giving up on a collision.
	maxIDAttempts = 3
)

// MemoryStore is a process-memory session store with a fixed capacity
// and per-entry TTL. Sessions are intentionally lost on restart; this
// is a short-lived credential cache, not a system of record.
type MemoryStore struct {
	entries *expirable.LRU[string, Record]
}

// NewMemoryStore creates a store evicting entries after ttl or, at
// capacity, in least-recently-used order. The underlying cache is
// internally synchronized.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: expirable.NewLRU[string, Record](capacity, nil, ttl),
	}
}

func (m *MemoryStore) Put(_ context.Context, r Record) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := uuid.NewString()
		if m.entries.Contains(id) {
			continue
		}
		m.entries.Add(id, r)
		return id, nil
	}
	return "", fmt.Errorf("session: could not generate a unique id after %d attempts", maxIDAttempts)
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*Record, error) {
	r, ok := m.entries.Get(sessionID)
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.entries.Remove(sessionID)
	return nil
}

// Len reports the current number of live entries.
func (m *MemoryStore) Len() int {
	return m.entries.Len()
}
