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
	"errors"
	"math"
	"sync"

	"github.com/lrucache/lrucache/log"
)

// ErrInvalidSize is returned when a SizeConstrainedCache is created with a
// zero byte budget.
var ErrInvalidSize = errors.New("invalid cache size")

// blobType is the type constraint for values stored in SizeConstrainedCache.
type blobType interface {
	~[]byte | ~string
}

// SizeConstrainedCache is a cache where capacity is in bytes (instead of item count). When the cache
// is at capacity, and a new item is added, older items are evicted until the size
// constraint is met.
//
// OBS: This cache assumes that items are content-addressed: keys are unique per content.
// In other words: two Add(..) with the same key K, will always have the same value V.
type SizeConstrainedCache[K comparable, V blobType] struct {
	size    uint64
	maxSize uint64
	lru     BasicLRU[K, V]
	lock    sync.Mutex
}

// NewSizeConstrainedCache creates a new size-constrained LRU cache.
func NewSizeConstrainedCache[K comparable, V blobType](maxSize uint64) (*SizeConstrainedCache[K, V], error) {
	if maxSize == 0 {
		return nil, ErrInvalidSize
	}
	basic, err := NewBasicLRU[K, V](math.MaxInt)
	if err != nil {
		return nil, err
	}
	return &SizeConstrainedCache[K, V]{
		maxSize: maxSize,
		lru:     basic,
	}, nil
}

// Add adds a value to the cache. Returns true if an eviction occurred.
// Values larger than the whole byte budget are not stored.
func (c *SizeConstrainedCache[K, V]) Add(key K, value V) (evicted bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	// Present keys only need their recency bumped, the content is the same.
	if c.lru.Contains(key) {
		c.lru.Get(key)
		return false
	}
	if uint64(len(value)) > c.maxSize {
		log.Debug("Rejected oversized cache item", "size", len(value), "max", c.maxSize)
		return false
	}
	targetSize := c.size + uint64(len(value))
	for targetSize > c.maxSize {
		evicted = true
		_, v, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		targetSize -= uint64(len(v))
	}
	c.size = targetSize
	c.lru.Add(key, value)
	return evicted
}

// Get looks up a key's value from the cache.
func (c *SizeConstrainedCache[K, V]) Get(key K) (V, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.lru.Get(key)
}

// Contains reports whether the given key exists in the cache.
func (c *SizeConstrainedCache[K, V]) Contains(key K) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.lru.Contains(key)
}

// Len returns the number of items in the cache.
func (c *SizeConstrainedCache[K, V]) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.lru.Len()
}

// Size returns the number of value bytes held by the cache.
func (c *SizeConstrainedCache[K, V]) Size() uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.size
}
