package hadith

import (
	"sync"
	"time"
)

type cacheEntry[T any] struct {
	value    T
	storedAt time.Time
	ttl      time.Duration
}

// Cache is a process-local TTL cache. Stale entries are bypassed on read
// (treated as a miss) but never swept; they are simply overwritten on the
// next successful fetch. The keyspace is bounded by the number of
// collections times the number of source modes, a small constant, so the
// lack of eviction is acceptable for the life of the process.
//
// Two goroutines missing on the same key will both fetch and the last
// writer wins. The redundant fetch is tolerated; the map itself is guarded.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry[T]
	ttl     time.Duration
	now     func() time.Time
}

// NewCache creates a cache whose entries expire after ttl by default.
func NewCache[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]cacheEntry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached value for key, or a miss if the key is absent or
// its entry has outlived its TTL.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	var zero T
	if !ok {
		return zero, false
	}
	if c.now().Sub(entry.storedAt) > entry.ttl {
		return zero, false
	}
	return entry.value, true
}

// Set stores value under key with the cache's default TTL, unconditionally
// overwriting any previous entry.
func (c *Cache[T]) Set(key string, value T) {
	c.SetTTL(key, value, c.ttl)
}

// SetTTL stores value under key with an entry-specific TTL.
func (c *Cache[T]) SetTTL(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = cacheEntry[T]{value: value, storedAt: c.now(), ttl: ttl}
	c.mu.Unlock()
}

// Len reports the number of entries, stale ones included.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
