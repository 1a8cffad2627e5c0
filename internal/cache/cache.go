// Package cache holds rendered comparison pages in memory. Bill text changes
// rarely, so a generous TTL saves repeated multi-megabyte fetches.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	html     string
	storedAt time.Time
}

// PageCache is a thread-safe in-memory page store with TTL eviction.
type PageCache struct {
	mu    sync.Mutex
	pages map[string]entry
	ttl   time.Duration
}

func New(ttl time.Duration) *PageCache {
	return &PageCache{
		pages: make(map[string]entry),
		ttl:   ttl,
	}
}

// Get returns the cached page for key, or ok=false on a miss. An expired
// entry is deleted and counts as a miss.
func (c *PageCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.pages[key]
	if !ok {
		return "", false
	}
	if time.Since(e.storedAt) > c.ttl {
		delete(c.pages, key)
		return "", false
	}
	return e.html, true
}

func (c *PageCache) Put(key, html string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[key] = entry{html: html, storedAt: time.Now()}
}

// Flush drops every entry and returns how many were dropped.
func (c *PageCache) Flush() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.pages)
	c.pages = make(map[string]entry)
	return n
}

// Cleanup removes expired entries. Run it periodically so a quiet server
// doesn't hold stale pages forever.
func (c *PageCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for key, e := range c.pages {
		if now.Sub(e.storedAt) > c.ttl {
			delete(c.pages, key)
		}
	}
}

// Len reports the number of live entries, expired or not.
func (c *PageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pages)
}
