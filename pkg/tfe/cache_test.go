package tfe_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

func TestMemoryCache_SetGet(t *testing.T) {
	t.Parallel()

	cache := tfe.NewMemoryCache(10)
	defer func() { _ = cache.Close() }()

	ctx := context.Background()
	entry := &tfe.CacheEntry{
		Data:      []byte(`{"data":{}}`),
		ExpiresAt: time.Now().Add(time.Minute),
	}

	require.NoError(t, cache.Set(ctx, "GET /organizations", entry))
	assert.True(t, cache.Has(ctx, "GET /organizations"))

	got, err := cache.Get(ctx, "GET /organizations")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, got.Data)
}

func TestMemoryCache_Missing(t *testing.T) {
	t.Parallel()

	cache := tfe.NewMemoryCache(10)
	defer func() { _ = cache.Close() }()

	_, err := cache.Get(context.Background(), "absent")
	require.ErrorIs(t, err, tfe.ErrCacheKeyNotFound)
	assert.False(t, cache.Has(context.Background(), "absent"))
}

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()

	cache := tfe.NewMemoryCache(10)
	defer func() { _ = cache.Close() }()

	ctx := context.Background()
	entry := &tfe.CacheEntry{
		Data:      []byte("stale"),
		ExpiresAt: time.Now().Add(-time.Second),
	}

	require.NoError(t, cache.Set(ctx, "key", entry))

	_, err := cache.Get(ctx, "key")
	require.ErrorIs(t, err, tfe.ErrCacheEntryExpired)

	// The expired read evicts the entry.
	_, err = cache.Get(ctx, "key")
	require.ErrorIs(t, err, tfe.ErrCacheKeyNotFound)
}

func TestMemoryCache_EvictsSoonestExpiring(t *testing.T) {
	t.Parallel()

	cache := tfe.NewMemoryCache(2)
	defer func() { _ = cache.Close() }()

	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "soon", &tfe.CacheEntry{ExpiresAt: time.Now().Add(time.Second)}))
	require.NoError(t, cache.Set(ctx, "later", &tfe.CacheEntry{ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, cache.Set(ctx, "new", &tfe.CacheEntry{ExpiresAt: time.Now().Add(time.Hour)}))

	assert.False(t, cache.Has(ctx, "soon"))
	assert.True(t, cache.Has(ctx, "later"))
	assert.True(t, cache.Has(ctx, "new"))
}

func TestMemoryCache_DeleteClear(t *testing.T) {
	t.Parallel()

	cache := tfe.NewMemoryCache(10)
	defer func() { _ = cache.Close() }()

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("key-%d", i)
		require.NoError(t, cache.Set(ctx, key, &tfe.CacheEntry{ExpiresAt: time.Now().Add(time.Minute)}))
	}

	require.NoError(t, cache.Delete(ctx, "key-0"))
	assert.False(t, cache.Has(ctx, "key-0"))
	assert.True(t, cache.Has(ctx, "key-1"))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "key-1"))
	assert.False(t, cache.Has(ctx, "key-2"))
}

func TestMemoryCache_CloseIdempotent(t *testing.T) {
	t.Parallel()

	cache := tfe.NewMemoryCache(10)
	require.NoError(t, cache.Close())
	require.NoError(t, cache.Close())
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := tfe.NewNoOpCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", &tfe.CacheEntry{}))
	assert.False(t, cache.Has(ctx, "key"))

	_, err := cache.Get(ctx, "key")
	require.ErrorIs(t, err, tfe.ErrCacheDisabled)

	require.NoError(t, cache.Delete(ctx, "key"))
	require.NoError(t, cache.Clear(ctx))
	require.NoError(t, cache.Close())
}

func TestCacheEntry_Expired(t *testing.T) {
	t.Parallel()

	assert.False(t, (&tfe.CacheEntry{}).Expired())
	assert.False(t, (&tfe.CacheEntry{ExpiresAt: time.Now().Add(time.Minute)}).Expired())
	assert.True(t, (&tfe.CacheEntry{ExpiresAt: time.Now().Add(-time.Minute)}).Expired())
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("memory", func(t *testing.T) {
		t.Parallel()

		cache, err := tfe.NewCacheFromConfig(tfe.DefaultCacheConfig())
		require.NoError(t, err)
		require.IsType(t, &tfe.MemoryCache{}, cache)
		require.NoError(t, cache.Close())
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		cache, err := tfe.NewCacheFromConfig(&tfe.CacheConfig{Type: tfe.CacheTypeNone})
		require.NoError(t, err)
		require.IsType(t, &tfe.NoOpCache{}, cache)
	})

	t.Run("nats requires config", func(t *testing.T) {
		t.Parallel()

		_, err := tfe.NewCacheFromConfig(&tfe.CacheConfig{Type: tfe.CacheTypeNATS})
		require.ErrorIs(t, err, tfe.ErrNATSConfigRequired)
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()

		_, err := tfe.NewCacheFromConfig(&tfe.CacheConfig{Type: tfe.CacheType("redis")})
		require.ErrorIs(t, err, tfe.ErrUnsupportedCacheType)
	})
}
