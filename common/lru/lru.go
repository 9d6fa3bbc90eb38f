// Copyright 2026 The lrucache Authors
// This file is part of the lrucache library.
//
// The lrucache library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lrucache library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lrucache library. If not, see <http://www.gnu.org/licenses/>.

package lru

import (
	"sync"

	"github.com/lrucache/lrucache/metrics"
)

// Cache is a LRU cache.
// This type is safe for concurrent use.
//
// Every method takes the same lock, including Get, because a hit reorders the
// recency list.
type Cache[K comparable, V any] struct {
	cache BasicLRU[K, V]
	mu    sync.Mutex

	hits      *metrics.Counter
	misses    *metrics.Counter
	inserts   *metrics.Counter
	evictions *metrics.Counter
}

// NewCache creates an LRU cache holding at most capacity items.
func NewCache[K comparable, V any](capacity int) (*Cache[K, V], error) {
	basic, err := NewBasicLRU[K, V](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{
		cache:     basic,
		hits:      metrics.NewCounter(),
		misses:    metrics.NewCounter(),
		inserts:   metrics.NewCounter(),
		evictions: metrics.NewCounter(),
	}, nil
}

// RegisterMetrics publishes the cache's counters in r under the given prefix,
// as <prefix>/hits, /misses, /inserts and /evictions.
func (c *Cache[K, V]) RegisterMetrics(prefix string, r metrics.Registry) error {
	if r == nil {
		r = metrics.DefaultRegistry
	}
	counters := []struct {
		name string
		c    *metrics.Counter
	}{
		{"hits", c.hits},
		{"misses", c.misses},
		{"inserts", c.inserts},
		{"evictions", c.evictions},
	}
	for _, counter := range counters {
		if err := r.Register(prefix+"/"+counter.name, counter.c); err != nil {
			return err
		}
	}
	return nil
}

// Add adds a value to the cache. Returns true if an item was evicted to store the new item.
func (c *Cache[K, V]) Add(key K, value V) (evicted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cache.Contains(key) {
		c.inserts.Inc(1)
	}
	evicted = c.cache.Add(key, value)
	if evicted {
		c.evictions.Inc(1)
	}
	return evicted
}

// Contains reports whether the given key exists in the cache.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Contains(key)
}

// Get retrieves a value from the cache. This marks the key as recently used.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok = c.cache.Get(key)
	if ok {
		c.hits.Inc(1)
	} else {
		c.misses.Inc(1)
	}
	return value, ok
}

// GetOldest retrieves the least-recently-used item without touching it.
func (c *Cache[K, V]) GetOldest() (key K, value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.GetOldest()
}

// Len returns the current number of items in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Len()
}

// Cap returns the maximum number of items the cache holds.
func (c *Cache[K, V]) Cap() int {
	return c.cache.Cap()
}

// Peek retrieves a value from the cache, but does not mark the key as recently used.
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Peek(key)
}

// Purge empties the cache.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Purge()
}

// Remove drops an item from the cache. Returns true if the key was present in cache.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Remove(key)
}

// RemoveOldest drops the least recently used item.
func (c *Cache[K, V]) RemoveOldest() (key K, value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.RemoveOldest()
}

// Keys returns all keys of items currently in the LRU, oldest first.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Keys()
}

// Stats returns the hit, miss, insert and eviction counts seen so far.
func (c *Cache[K, V]) Stats() (hits, misses, inserts, evictions int64) {
	return c.hits.Snapshot().Count(), c.misses.Snapshot().Count(),
		c.inserts.Snapshot().Count(), c.evictions.Snapshot().Count()
}
