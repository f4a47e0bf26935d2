// Package cache is a small in-memory TTL cache used to avoid
// re-calling the translation endpoint for text it has already seen.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Cache maps keys to string values with per-entry expiry.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
}

// New creates a cache and starts its hourly cleanup loop.
func New() *Cache {
	c := &Cache{items: make(map[string]entry)}
	go c.cleanupLoop()
	return c
}

// Set stores a value with a TTL.
func (c *Cache) Set(key, value string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
}

// Get returns the cached value if present and not expired.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists || time.Now().After(item.expiresAt) {
		return "", false
	}
	return item.value, true
}

// Key builds a cache key from the text and target language.
func Key(text, lang string) string {
	h := sha256.New()
	h.Write([]byte(text + "|" + lang))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *Cache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, key)
		}
	}
}
