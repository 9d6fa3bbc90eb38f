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

import "sort"

// scanLRU is the array-plus-timestamp cache: every operation scans all
// entries and the victim is the one with the smallest timestamp. It is O(n)
// and only serves as a reference model for the randomized tests.
type scanLRU struct {
	capacity int
	clock    int64
	nodes    []scanNode
}

type scanNode struct {
	key, value int
	stamp      int64
}

func newScanLRU(capacity int) *scanLRU {
	return &scanLRU{capacity: capacity}
}

func (s *scanLRU) find(key int) int {
	for i := range s.nodes {
		if s.nodes[i].key == key {
			return i
		}
	}
	return -1
}

func (s *scanLRU) put(key, value int) (evicted bool) {
	s.clock++
	if i := s.find(key); i >= 0 {
		s.nodes[i].value = value
		s.nodes[i].stamp = s.clock
		return false
	}
	n := scanNode{key: key, value: value, stamp: s.clock}
	if len(s.nodes) < s.capacity {
		s.nodes = append(s.nodes, n)
		return false
	}
	oldest := 0
	for i := 1; i < len(s.nodes); i++ {
		if s.nodes[i].stamp < s.nodes[oldest].stamp {
			oldest = i
		}
	}
	s.nodes[oldest] = n
	return true
}

func (s *scanLRU) get(key int) (int, bool) {
	s.clock++
	if i := s.find(key); i >= 0 {
		s.nodes[i].stamp = s.clock
		return s.nodes[i].value, true
	}
	return 0, false
}

func (s *scanLRU) remove(key int) bool {
	i := s.find(key)
	if i < 0 {
		return false
	}
	s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
	return true
}

// keys returns the keys ordered from oldest to newest.
func (s *scanLRU) keys() []int {
	sorted := append([]scanNode(nil), s.nodes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].stamp < sorted[j].stamp })
	keys := make([]int, 0, len(sorted))
	for _, n := range sorted {
		keys = append(keys, n.key)
	}
	return keys
}
