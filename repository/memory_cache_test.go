package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cache := NewMemoryCache()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v", 0))
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cache := NewMemoryCache()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))

	now = now.Add(30 * time.Second)
	_, ok := cache.Get(ctx, "k")
	assert.True(t, ok, "entry should survive before ttl")

	now = now.Add(time.Minute)
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok, "entry should expire after ttl")
}

func TestMemoryCache_SetSweepsExpiredEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cache := NewMemoryCache()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, cache.Set(ctx, key, "v", time.Minute))
	}
	require.NoError(t, cache.Set(ctx, "forever", "v", 0))
	assert.Equal(t, 4, cache.Len())

	// Within the sweep interval nothing is scanned.
	now = now.Add(30 * time.Second)
	require.NoError(t, cache.Set(ctx, "d", "v", time.Minute))
	assert.Equal(t, 5, cache.Len())

	// a, b and c are expired and never read again; the next Set drops them.
	now = now.Add(45 * time.Second)
	require.NoError(t, cache.Set(ctx, "e", "v", time.Minute))
	assert.Equal(t, 3, cache.Len())

	_, ok := cache.Get(ctx, "forever")
	assert.True(t, ok)
	_, ok = cache.Get(ctx, "d")
	assert.True(t, ok)
}
