package hashing

import (
	"sync"
	"sync/atomic"
)

// cacheKey identifies a subtree: the position and the depth counted below it.
type cacheKey struct {
	key   uint64
	depth int
}

// Cache remembers leaf counts by position key and depth. It is safe for
// concurrent use.
type Cache struct {
	mu       sync.RWMutex
	entries  map[cacheKey]uint64
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache creates an empty cache. maxCapacity of 0 means unlimited
// capacity; otherwise entries past the limit are dropped.
func NewCache(maxCapacity int) *Cache {
	return &Cache{
		entries:  make(map[cacheKey]uint64),
		capacity: maxCapacity,
	}
}

// Get returns the count stored for key at depth.
func (c *Cache) Get(key uint64, depth int) (uint64, bool) {
	c.mu.RLock()
	nodes, ok := c.entries[cacheKey{key, depth}]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return nodes, ok
}

// Put stores the count for key at depth unless the cache is full.
func (c *Cache) Put(key uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.capacity > 0 && len(c.entries) >= c.capacity {
		return
	}
	c.entries[cacheKey{key, depth}] = nodes
}

// Len returns the number of stored counts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity.
func (c *Cache) IsFull() bool {
	if c.capacity <= 0 {
		return false
	}
	return c.Len() >= c.capacity
}

// Stats returns the number of lookups that found and missed an entry.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
