// Package cache is a small in-process key/value store with per-entry expiry.
// List-style reads (store catalogs) use it to avoid redundant round trips.
package cache

import (
	"regexp"
	"sync"
	"time"
)

type entry struct {
	value      any
	insertedAt time.Time
	ttl        time.Duration
}

// TTLCache evicts lazily: an expired entry is removed on the Get that observes
// it, there is no background sweep. The mutex guarantees a Get racing a Set on
// the same key never observes anything older than the last completed Set.
type TTLCache struct {
	mu      sync.Mutex
	entries map[string]entry

	now func() time.Time
}

func NewTTLCache() *TTLCache {
	return &TTLCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *TTLCache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, insertedAt: c.now(), ttl: ttl}
}

func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.insertedAt) > e.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// DeleteByPattern removes every key matching the regular expression. Callers
// use it to drop all derived keys for a collection after a write, e.g.
// `^stores:owner:` when any store changes.
func (c *TTLCache) DeleteByPattern(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if re.MatchString(key) {
			delete(c.entries, key)
		}
	}
	return nil
}

func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
