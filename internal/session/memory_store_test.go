package session

import (
	"context"
	"testing"
	"time"

	"aws-auth-service/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(subject string) Record {
	return Record{
		IDToken:     "id-token-" + subject,
		AccessToken: "access-token-" + subject,
		Identity: auth.Identity{
			Provider: "google",
			Subject:  subject,
			Email:    subject + "@example.com",
			Name:     "User " + subject,
		},
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	store := NewMemoryStore(10, time.Minute)
	ctx := context.Background()

	want := testRecord("alice")
	id, err := store.Put(ctx, want)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestGetUnknownID(t *testing.T) {
	store := NewMemoryStore(10, time.Minute)

	_, err := store.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAfterTTL(t *testing.T) {
	store := NewMemoryStore(10, 30*time.Millisecond)
	ctx := context.Background()

	id, err := store.Put(ctx, testRecord("bob"))
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCapacityEviction(t *testing.T) {
	store := NewMemoryStore(3, time.Minute)
	ctx := context.Background()

	first, err := store.Put(ctx, testRecord("u0"))
	require.NoError(t, err)

	for _, subject := range []string{"u1", "u2", "u3"} {
		_, err := store.Put(ctx, testRecord(subject))
		require.NoError(t, err)
	}

	assert.LessOrEqual(t, store.Len(), 3)

	_, err = store.Get(ctx, first)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := NewMemoryStore(10, time.Minute)
	ctx := context.Background()

	id, err := store.Put(ctx, testRecord("carol"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting again is a no-op
	assert.NoError(t, store.Delete(ctx, id))
}

func TestDistinctIDs(t *testing.T) {
	store := NewMemoryStore(100, time.Minute)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := store.Put(ctx, testRecord("x"))
		require.NoError(t, err)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
