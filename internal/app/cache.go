package app

import (
	"sync"
	"time"
)

// Cache is a small string-keyed TTL cache. Once over capacity it evicts the
// oldest inserted key (insertion order, not LRU). Entries past their max age
// are removed on read.
type Cache struct {
	mu      sync.Mutex
	maxSize int
	maxAge  time.Duration
	entries map[string]cacheEntry
	order   []string
	now     func() time.Time
}

type cacheEntry struct {
	value    any
	storedAt time.Time
}

// NewCache builds a cache with the given capacity and entry lifetime.
func NewCache(maxSize int, maxAge time.Duration) *Cache {
	if maxSize <= 0 {
		maxSize = 16
	}
	return &Cache{
		maxSize: maxSize,
		maxAge:  maxAge,
		entries: make(map[string]cacheEntry, maxSize),
		now:     time.Now,
	}
}

// Set stores a value, evicting the oldest inserted key when at capacity.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if len(c.entries) >= c.maxSize && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{value: value, storedAt: c.now()}
}

// Get returns the cached value, or nil/false when absent or expired. Expired
// entries are removed.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.maxAge > 0 && c.now().Sub(entry.storedAt) > c.maxAge {
		delete(c.entries, key)
		c.removeFromOrder(key)
		return nil, false
	}
	return entry.value, true
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry, c.maxSize)
	c.order = nil
}

func (c *Cache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
