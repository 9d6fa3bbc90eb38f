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

// Package lru implements generically-typed LRU caches.
package lru

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned when a cache is created with a capacity
// below one.
var ErrInvalidCapacity = errors.New("invalid cache capacity")

// BasicLRU is a simple LRU cache.
//
// This type is not safe for concurrent use.
// The zero value is not valid, instances must be created using NewBasicLRU.
type BasicLRU[K comparable, V any] struct {
	list  *list[K, V]
	items map[K]handle
	cap   int
}

// NewBasicLRU creates a new LRU cache holding at most capacity items.
func NewBasicLRU[K comparable, V any](capacity int) (BasicLRU[K, V], error) {
	if capacity < 1 {
		return BasicLRU[K, V]{}, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	c := BasicLRU[K, V]{
		list:  newList[K, V](),
		items: make(map[K]handle),
		cap:   capacity,
	}
	return c, nil
}

// Add adds a value to the cache. Returns true if an item was evicted to store the new item.
func (c *BasicLRU[K, V]) Add(key K, value V) (evicted bool) {
	if h, ok := c.items[key]; ok {
		c.list.get(h).value = value
		c.list.moveToFront(h)
		return false
	}
	h := c.list.alloc(key, value)
	c.list.pushFront(h)
	c.items[key] = h

	if c.list.len() > c.cap {
		old := c.list.removeLast()
		delete(c.items, c.list.get(old).key)
		c.list.release(old)
		evicted = true
	}
	return evicted
}

// Contains reports whether the given key exists in the cache.
func (c *BasicLRU[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Get retrieves a value from the cache. This marks the key as recently used.
func (c *BasicLRU[K, V]) Get(key K) (value V, ok bool) {
	h, ok := c.items[key]
	if !ok {
		return value, false
	}
	c.list.moveToFront(h)
	return c.list.get(h).value, true
}

// GetOldest retrieves the least-recently-used item.
// Note that this does not update the item's recency.
func (c *BasicLRU[K, V]) GetOldest() (key K, value V, ok bool) {
	h := c.list.last()
	if h == none {
		return key, value, false
	}
	e := c.list.get(h)
	return e.key, e.value, true
}

// Len returns the current number of items in the cache.
func (c *BasicLRU[K, V]) Len() int {
	return len(c.items)
}

// Cap returns the maximum number of items the cache holds.
func (c *BasicLRU[K, V]) Cap() int {
	return c.cap
}

// Peek retrieves a value from the cache, but does not mark the key as recently used.
func (c *BasicLRU[K, V]) Peek(key K) (value V, ok bool) {
	h, ok := c.items[key]
	if !ok {
		return value, false
	}
	return c.list.get(h).value, true
}

// Purge empties the cache.
func (c *BasicLRU[K, V]) Purge() {
	c.list.init()
	clear(c.items)
}

// Remove drops an item from the cache. Returns true if the key was present in cache.
func (c *BasicLRU[K, V]) Remove(key K) bool {
	h, ok := c.items[key]
	if ok {
		delete(c.items, key)
		c.list.remove(h)
		c.list.release(h)
	}
	return ok
}

// RemoveOldest drops the least recently used item.
func (c *BasicLRU[K, V]) RemoveOldest() (key K, value V, ok bool) {
	h := c.list.removeLast()
	if h == none {
		return key, value, false
	}
	e := c.list.get(h)
	key, value = e.key, e.value
	delete(c.items, key)
	c.list.release(h)
	return key, value, true
}

// Keys returns all keys in the cache, ordered from oldest to newest.
func (c *BasicLRU[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	return c.list.appendTo(keys)
}
