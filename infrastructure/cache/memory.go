package cache

import (
	"context"
	"path"
	"slices"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCache é o cache local usado quando o Redis está desabilitado.
// Entradas expiradas são descartadas na leitura e em Sweep.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
	stats   Stats
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || entry.expired(c.now()) {
		if ok {
			c.mu.Lock()
			if current, exists := c.entries[key]; exists && current.expired(c.now()) {
				delete(c.entries, key)
			}
			c.mu.Unlock()
		}
		c.stats.misses.Add(1)
		return nil, false, nil
	}

	c.stats.hits.Add(1)
	return slices.Clone(entry.value), true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: slices.Clone(value)}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()

	c.stats.sets.Add(1)
	return nil
}

// DeletePattern remove as chaves que casam com o padrão (sintaxe de path.Match)
func (c *MemoryCache) DeletePattern(_ context.Context, pattern string) error {
	if _, err := path.Match(pattern, ""); err != nil {
		c.stats.errors.Add(1)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var deleted uint64
	for key := range c.entries {
		if matched, _ := path.Match(pattern, key); matched {
			delete(c.entries, key)
			deleted++
		}
	}

	c.stats.deletes.Add(deleted)
	return nil
}

// Sweep remove as entradas expiradas e retorna quantas foram removidas
func (c *MemoryCache) Sweep() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if entry.expired(now) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryCache) Stats() StatsSnapshot {
	return c.stats.snapshot("memory")
}
