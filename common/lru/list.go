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

// handle addresses an entry in the list arena. Handles stay valid while the
// entry is linked; a released handle may be handed out again by alloc.
type handle int

// none marks the absence of a neighbour, or of a head/tail on an empty list.
const none handle = -1

// entry is one key/value pair and its position in the recency order.
type entry[K any, V any] struct {
	key   K
	value V
	prev  handle // towards the head (more recently used)
	next  handle // towards the tail (less recently used)
}

// list is a doubly-linked list of entries kept in a slice arena. Head is the
// most recently used entry, tail the least recently used one. Free slots are
// chained through their next link.
//
// The zero value is not valid, use newList to create lists.
type list[K any, V any] struct {
	elems []entry[K, V]
	head  handle
	tail  handle
	free  handle
	size  int
}

func newList[K any, V any]() *list[K, V] {
	l := new(list[K, V])
	l.init()
	return l
}

// init reinitializes the list, making it empty and dropping the arena.
func (l *list[K, V]) init() {
	clear(l.elems)
	l.elems = l.elems[:0]
	l.head, l.tail, l.free = none, none, none
	l.size = 0
}

// alloc stores a fresh, unlinked entry and returns its handle. Released slots
// are reused before the arena grows.
func (l *list[K, V]) alloc(key K, value V) handle {
	e := entry[K, V]{key: key, value: value, prev: none, next: none}
	if h := l.free; h != none {
		l.free = l.elems[h].next
		l.elems[h] = e
		return h
	}
	l.elems = append(l.elems, e)
	return handle(len(l.elems) - 1)
}

// release returns an unlinked slot to the free chain. The key and value are
// zeroed so the arena does not pin them.
func (l *list[K, V]) release(h handle) {
	l.elems[h] = entry[K, V]{prev: none, next: l.free}
	l.free = h
}

// pushFront links an unlinked entry in as the new head.
func (l *list[K, V]) pushFront(h handle) {
	e := &l.elems[h]
	e.prev = none
	e.next = l.head
	if l.head != none {
		l.elems[l.head].prev = h
	} else {
		l.tail = h
	}
	l.head = h
	l.size++
}

// remove unlinks an entry, patching its neighbours and the head/tail marks.
func (l *list[K, V]) remove(h handle) {
	if h == none {
		panic("lru: remove of none handle")
	}
	e := &l.elems[h]
	if e.prev != none {
		l.elems[e.prev].next = e.next
	} else {
		if l.head != h {
			panic("lru: remove of unlinked entry")
		}
		l.head = e.next
	}
	if e.next != none {
		l.elems[e.next].prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.prev, e.next = none, none
	l.size--
}

// moveToFront makes the entry the head of the list.
func (l *list[K, V]) moveToFront(h handle) {
	if l.head == h {
		return
	}
	l.remove(h)
	l.pushFront(h)
}

// removeLast unlinks and returns the tail, or none if the list is empty.
// The slot is not released, the caller still needs its key.
func (l *list[K, V]) removeLast() handle {
	last := l.tail
	if last != none {
		l.remove(last)
	}
	return last
}

// last returns the tail of the list, or none if the list is empty.
func (l *list[K, V]) last() handle {
	return l.tail
}

func (l *list[K, V]) len() int {
	return l.size
}

func (l *list[K, V]) get(h handle) *entry[K, V] {
	return &l.elems[h]
}

// appendTo appends all keys to slice, starting at the oldest entry.
func (l *list[K, V]) appendTo(slice []K) []K {
	for h := l.tail; h != none; h = l.elems[h].prev {
		slice = append(slice, l.elems[h].key)
	}
	return slice
}
