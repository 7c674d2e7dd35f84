package weather

import (
	"sync"
	"time"
)

type cacheEntry struct {
	report    *Report
	expiresAt time.Time
}

// Cache is a small read-through cache for weather reports keyed by location.
// Expiry is tracked per key. It is injected into the Client rather than held
// as package state so tests can control it.
type Cache struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time

	entries map[string]cacheEntry
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *Cache) Get(key string) (*Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}

	return entry.report, true
}

func (c *Cache) Set(key string, report *Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		report:    report,
		expiresAt: c.now().Add(c.ttl),
	}
}
