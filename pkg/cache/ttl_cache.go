package cache

import (
	"sync"
	"time"
)

// TTLCache is a tiny in-memory TTL key store.
// Values are not stored; only key existence within TTL is tracked. The
// comment throttle uses it to swallow duplicate form submissions.
// It is process-local and NOT suitable for distributed deployments.
type TTLCache struct {
	mu   sync.Mutex
	data map[string]time.Time // key -> expiry time
}

// NewTTLCache creates a new empty TTL cache.
func NewTTLCache() *TTLCache {
	return &TTLCache{
		data: make(map[string]time.Time),
	}
}

// Used reports whether key is present and not expired.
// It lazily prunes expired entries on access.
func (c *TTLCache) Used(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	exp, ok := c.data[key]
	if !ok {
		return false
	}

	if time.Now().After(exp) {
		delete(c.data, key)
		return false
	}

	return true
}

// Mark stores the key with a time-to-live and prunes expired entries.
func (c *TTLCache) Mark(key string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for k, exp := range c.data {
		if now.After(exp) {
			delete(c.data, k)
		}
	}

	c.data[key] = now.Add(ttl)
}

// UseOnce marks the key and reports whether it had already been used within
// its TTL. The first call for a key returns false; repeats return true until
// the entry expires.
func (c *TTLCache) UseOnce(key string, ttl time.Duration) bool {
	if c.Used(key) {
		return true
	}

	c.Mark(key, ttl)

	return false
}
