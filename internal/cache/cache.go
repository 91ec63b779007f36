// Package cache provides a process-wide TTL cache used to memoize LLM
// responses for idempotent calls (summaries, keypoints, Q&A). Entries are
// evicted lazily: a read past the expiry both misses and deletes the entry.
// There is no background sweep.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// DefaultTTL is how long memoized responses stay valid.
const DefaultTTL = 3600 * time.Second

type entry struct {
	value    string
	expireAt time.Time
}

// Cache is a concurrency-safe in-memory string cache with per-entry TTL.
// A single instance is shared by every caller in the process; inject it
// rather than reaching for a global.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key, or ("", false) if the key is absent
// or expired. An expired entry is removed on read.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if !c.now().Before(e.expireAt) {
		delete(c.entries, key)
		return "", false
	}
	return e.value, true
}

// Set stores value under key for the given TTL. A non-positive TTL produces
// an entry that is already expired on the next read.
func (c *Cache) Set(key, value string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:    value,
		expireAt: c.now().Add(ttl),
	}
}

// Delete removes key from the cache if present.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Exists reports whether key holds an unexpired value. It shares Get's
// lazy-eviction behavior.
func (c *Cache) Exists(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Len returns the number of stored entries, including any that have expired
// but not yet been read.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Key derives a stable content-addressed cache key from a call-type prefix
// and the serialized request payload.
func Key(prefix, payload string) string {
	sum := sha256.Sum256([]byte(payload))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
