package session

import (
	"context"
	"errors"

	"aws-auth-service/internal/auth"
)

// ErrNotFound is returned when a session id is absent from the store,
// whether it never existed, expired, or was evicted. Callers must
// treat all three the same.
var ErrNotFound = errors.New("session: not found")

// Record is the server-side state kept per authenticated session.
// It is written once at login and never mutated afterwards.
type Record struct {
	IDToken     string        // provider identity assertion, fed to the cloud federation exchange
	AccessToken string        // provider access token, revoked on logout
	Identity    auth.Identity // verified identity claims
}

// Store maps opaque session identifiers to Records. Implementations
// must be safe for concurrent use from in-flight requests.
type Store interface {
	// Put inserts the record under a freshly generated identifier and
	// returns that identifier.
	Put(ctx context.Context, r Record) (string, error)

	// Get returns the record if present and not expired. Expired
	// entries are treated as absent.
	Get(ctx context.Context, sessionID string) (*Record, error)

	// Delete removes the entry if present; no-op otherwise.
	Delete(ctx context.Context, sessionID string) error
}
