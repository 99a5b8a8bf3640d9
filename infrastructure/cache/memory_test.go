package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestMemoryCache() (*MemoryCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)}
	cache := NewMemoryCache()
	cache.now = clock.Now
	return cache, clock
}

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestMemoryCache()

	_, found, err := cache.Get(ctx, "intelligence:s1:abc")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "intelligence:s1:abc", []byte(`{"ok":true}`), time.Minute))

	value, found, err := cache.Get(ctx, "intelligence:s1:abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"ok":true}`, string(value))

	stats := cache.Stats()
	assert.Equal(t, "memory", stats.Backend)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(1), stats.Sets)
	assert.InDelta(t, 50.0, stats.HitRate, 1e-9)
}

func TestMemoryCache_ValorCopiado(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestMemoryCache()

	original := []byte("abc")
	require.NoError(t, cache.Set(ctx, "k", original, 0))
	original[0] = 'z'

	value, _, _ := cache.Get(ctx, "k")
	assert.Equal(t, "abc", string(value))

	value[1] = 'z'
	again, _, _ := cache.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestMemoryCache_Expiracao(t *testing.T) {
	ctx := context.Background()
	cache, clock := newTestMemoryCache()

	require.NoError(t, cache.Set(ctx, "curta", []byte("1"), time.Minute))
	require.NoError(t, cache.Set(ctx, "longa", []byte("2"), time.Hour))
	require.NoError(t, cache.Set(ctx, "eterna", []byte("3"), 0))

	clock.Advance(2 * time.Minute)

	_, found, _ := cache.Get(ctx, "curta")
	assert.False(t, found)
	_, found, _ = cache.Get(ctx, "longa")
	assert.True(t, found)

	clock.Advance(2 * time.Hour)

	assert.Equal(t, 1, cache.Sweep())
	assert.Equal(t, 1, cache.Len())
	_, found, _ = cache.Get(ctx, "eterna")
	assert.True(t, found)
}

func TestMemoryCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestMemoryCache()

	for _, key := range []string{"intelligence:s1:a", "intelligence:s1:b", "intelligence:s2:a", "snapshot:a"} {
		require.NoError(t, cache.Set(ctx, key, []byte("x"), time.Minute))
	}

	require.NoError(t, cache.DeletePattern(ctx, "intelligence:s1:*"))

	assert.Equal(t, 2, cache.Len())
	_, found, _ := cache.Get(ctx, "intelligence:s2:a")
	assert.True(t, found)
	assert.Equal(t, uint64(2), cache.Stats().Deletes)

	assert.Error(t, cache.DeletePattern(ctx, "intelligence:["))
}

func TestMemoryCache_Concorrencia(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = cache.Set(ctx, "k", []byte("v"), time.Minute)
			_, _, _ = cache.Get(ctx, "k")
			_ = cache.DeletePattern(ctx, "other:*")
		}()
	}
	wg.Wait()

	_, found, _ := cache.Get(ctx, "k")
	assert.True(t, found)
}
