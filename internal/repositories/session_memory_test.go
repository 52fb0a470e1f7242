package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/sbilibin2017/mundo-divertido/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	store := NewMemorySessionStore()
	store.now = fixedClock(&now)

	sess := &models.Session{
		ID:        "s1",
		Kind:      models.SessionUser,
		UserID:    5,
		IsParent:  true,
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))

	t.Run("get saved", func(t *testing.T) {
		got, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, sess, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		got, err := store.Get(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("expired session is hidden", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, &models.Session{ID: "old", Kind: models.SessionGuest, ExpiresAt: now}))

		got, err := store.Get(ctx, "old")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, &models.Session{ID: "s2", Kind: models.SessionGuest, ExpiresAt: now.Add(time.Minute)}))
		require.NoError(t, store.Delete(ctx, "s2"))
		require.NoError(t, store.Delete(ctx, "never-existed"))

		got, err := store.Get(ctx, "s2")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestMemorySessionStore_Prune(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	store := NewMemorySessionStore()
	store.now = fixedClock(&now)

	require.NoError(t, store.Save(ctx, &models.Session{ID: "a", ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, store.Save(ctx, &models.Session{ID: "b", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, store.Save(ctx, &models.Session{ID: "c", ExpiresAt: now.Add(-time.Second)}))

	assert.Equal(t, 1, store.Prune())

	now = now.Add(30 * time.Minute)
	assert.Equal(t, 1, store.Prune())
	assert.Len(t, store.sessions, 1)
	assert.Contains(t, store.sessions, "b")
}

func TestMemorySessionStore_StartPruner(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := NewMemorySessionStore()
	require.NoError(t, store.Save(ctx, &models.Session{ID: "gone", ExpiresAt: time.Now().Add(-time.Second)}))

	store.StartPruner(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.sessions) == 0
	}, time.Second, 10*time.Millisecond)
}
