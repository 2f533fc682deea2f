package cache

// node is an entry in the intrusive doubly-linked recency list.
// Storing the key alongside the value allows O(1) map deletion on eviction.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// Stats holds counters for one cache instance.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits and Misses count Get outcomes since creation or the last Clear.
	Hits   uint64
	Misses uint64
	// Evictions counts entries removed by capacity pressure.
	Evictions uint64
}

// LRU is a bounded least-recently-used cache.
// The head of the recency list is the most recently used entry, the tail the
// least recently used. LRU is NOT safe for concurrent use.
type LRU[K comparable, V any] struct {
	capacity int
	entries  map[K]*node[K, V]
	head     *node[K, V]
	tail     *node[K, V]

	hits      uint64
	misses    uint64
	evictions uint64
}

// New creates an LRU cache holding at most capacity entries.
// Panics if capacity is not positive; a cache that cannot hold anything is a
// construction bug, not a runtime condition.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: capacity must be positive")
	}
	return &LRU[K, V]{
		capacity: capacity,
		entries:  make(map[K]*node[K, V], capacity),
	}
}

// Get returns the value stored for key and refreshes its recency.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	n, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.moveToFront(n)
	return n.value, true
}

// Put stores value under key as the most recently used entry, evicting the
// least recently used entry if the cache is full. Storing an existing key
// replaces its value and refreshes its recency.
func (c *LRU[K, V]) Put(key K, value V) {
	if n, ok := c.entries[key]; ok {
		n.value = value
		c.moveToFront(n)
		return
	}

	for len(c.entries) >= c.capacity {
		c.evictOldest()
	}

	n := &node[K, V]{key: key, value: value}
	c.entries[key] = n
	c.pushFront(n)
}

// Contains reports whether key is cached without touching its recency.
func (c *LRU[K, V]) Contains(key K) bool {
	_, ok := c.entries[key]
	return ok
}

// Oldest returns the least recently used key without touching it.
func (c *LRU[K, V]) Oldest() (K, bool) {
	if c.tail == nil {
		var zero K
		return zero, false
	}
	return c.tail.key, true
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int { return len(c.entries) }

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int { return c.capacity }

// Clear removes all entries and resets the counters.
func (c *LRU[K, V]) Clear() {
	c.entries = make(map[K]*node[K, V], c.capacity)
	c.head = nil
	c.tail = nil
	c.hits = 0
	c.misses = 0
	c.evictions = 0
}

// Stats returns the cache's current counters.
func (c *LRU[K, V]) Stats() Stats {
	return Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// evictOldest removes the tail entry.
func (c *LRU[K, V]) evictOldest() {
	if c.tail == nil {
		return
	}
	n := c.tail
	c.unlink(n)
	delete(c.entries, n.key)
	c.evictions++
}

// pushFront inserts a detached node at the head.
func (c *LRU[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

// moveToFront makes n the most recently used entry.
func (c *LRU[K, V]) moveToFront(n *node[K, V]) {
	if n == c.head {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

// unlink removes n from the recency list.
func (c *LRU[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}
