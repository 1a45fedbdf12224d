package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most limit entries. Adding
// an entry to a full cache evicts the least recently used one.
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	limit int
	items map[K]*node[K, V]
	order lruList[K, V]

	hits, misses, evictions uint64
}

// New creates a cache holding at most limit entries. A limit below one is
// treated as one.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		limit: max(limit, 1),
		items: make(map[K]*node[K, V]),
	}
}

// GetOrCreate returns the cached value for key, calling create to build
// it on a miss. create runs under the cache lock and must not use the
// cache.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		c.hits++
		c.order.moveToFront(n)
		return n.value
	}
	c.misses++
	value := create()
	c.insert(key, value)
	return value
}

// insert adds a new entry, evicting the oldest if the cache is full.
// Caller must hold c.mu.
func (c *Cache[K, V]) insert(key K, value V) {
	if c.order.len >= c.limit {
		if old := c.order.removeOldest(); old != nil {
			delete(c.items, old.key)
			c.evictions++
		}
	}
	c.items[key] = c.order.pushFront(key, value)
}

// Clear removes all entries. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*node[K, V])
	c.order = lruList[K, V]{}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Stats contains cache statistics.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:       len(c.items),
		Capacity:  c.limit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}
