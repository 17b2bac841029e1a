package api

import (
	"sync"
	"time"
)

// dynamicCache is a short-lived response cache for dynamic content
// (comments). It exists only as an offline fallback for very recent reads;
// the sync runner invalidates it after replaying comment or like actions so
// subsequent reads are not stale.
type dynamicCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

func newDynamicCache(ttl time.Duration) *dynamicCache {
	return &dynamicCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *dynamicCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.data, true
}

func (c *dynamicCache) set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{data: data, expiresAt: time.Now().Add(c.ttl)}
}

func (c *dynamicCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
