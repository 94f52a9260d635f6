package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora/domain/errs"
	"planora/domain/models"
)

func TestMemoryStorePutGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := &models.Session{
		ID:       "sess-1",
		UserID:   uuid.New(),
		Username: "alice",
	}

	require.NoError(t, store.Put(ctx, sess, time.Hour))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, "alice", got.Username)

	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err = store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := &models.Session{ID: "short", UserID: uuid.New()}
	require.NoError(t, store.Put(ctx, sess, -time.Second))

	// หมดอายุแล้วต้อง Get ไม่เจอ แม้ sweep ยังไม่ได้รัน
	_, err := store.Get(ctx, "short")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStoreSweep(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &models.Session{ID: "live", UserID: uuid.New()}, time.Hour))
	require.NoError(t, store.Put(ctx, &models.Session{ID: "dead-1", UserID: uuid.New()}, -time.Minute))
	require.NoError(t, store.Put(ctx, &models.Session{ID: "dead-2", UserID: uuid.New()}, -time.Minute))

	removed := store.Sweep(time.Now())
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(ctx, "live")
	assert.NoError(t, err)
}

func TestMemoryStoreDeleteMissingIsNoop(t *testing.T) {
	store := NewMemoryStore()

	assert.NoError(t, store.Delete(context.Background(), "never-existed"))
}
