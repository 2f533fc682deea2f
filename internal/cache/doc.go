// Package cache provides the bounded least-recently-used cache backing the
// textcache font and shape tiers.
//
//	c := cache.New[string, int](100)
//	c.Put("key", 42)
//	value, ok := c.Get("key")
//
// Capacity is strict: inserting into a full cache evicts exactly the least
// recently used entry first. Every Get and Put refreshes the entry's recency.
//
// # Thread safety
//
// LRU is deliberately unsynchronized. Both tiers are exclusively owned by one
// CachingShaper instance on one rendering goroutine, and every read mutates
// recency order, so internal locking would buy nothing; callers that share a
// cache must serialize access.
package cache
