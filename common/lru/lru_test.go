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
	"fmt"
	"testing"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/lrucache/lrucache/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestNewCacheInvalidCapacity(t *testing.T) {
	c, err := NewCache[string, int](0)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrInvalidCapacity))
}

func TestCacheScenario(t *testing.T) {
	c, err := NewCache[int, int](2)
	require.NoError(t, err)

	c.Add(1, 1)
	c.Add(2, 2)
	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, c.Add(3, 3))
	_, ok = c.Get(2)
	assert.False(t, ok)
	c.Add(4, 4)
	_, ok = c.Get(1)
	assert.False(t, ok)
	v, _ = c.Get(3)
	assert.Equal(t, 3, v)
	v, _ = c.Get(4)
	assert.Equal(t, 4, v)

	hits, misses, inserts, evictions := c.Stats()
	assert.Equal(t, int64(3), hits)
	assert.Equal(t, int64(2), misses)
	assert.Equal(t, int64(4), inserts)
	assert.Equal(t, int64(2), evictions)
}

func TestCacheSurface(t *testing.T) {
	c, err := NewCache[string, string](3)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Cap())

	c.Add("a", "A")
	c.Add("b", "B")
	c.Add("a", "AA")
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Contains("b"))
	v, ok := c.Peek("a")
	assert.True(t, ok)
	assert.Equal(t, "AA", v)
	assert.Equal(t, []string{"b", "a"}, c.Keys())

	k, v, ok := c.GetOldest()
	assert.True(t, ok)
	assert.Equal(t, "b", k)
	assert.Equal(t, "B", v)

	k, _, ok = c.RemoveOldest()
	assert.True(t, ok)
	assert.Equal(t, "b", k)
	assert.True(t, c.Remove("a"))
	assert.Zero(t, c.Len())

	c.Add("x", "X")
	c.Purge()
	assert.Empty(t, c.Keys())

	_, _, inserts, _ := c.Stats()
	assert.Equal(t, int64(3), inserts, "an update is not an insert")
}

func TestCacheRegisterMetrics(t *testing.T) {
	r := metrics.NewRegistry()
	c, err := NewCache[int, int](1)
	require.NoError(t, err)
	require.NoError(t, c.RegisterMetrics("lru/test", r))

	c.Add(1, 1)
	c.Add(2, 2)
	c.Get(2)
	c.Get(1)

	count := func(name string) int64 {
		return r.Get(name).(*metrics.Counter).Snapshot().Count()
	}
	assert.Equal(t, int64(1), count("lru/test/hits"))
	assert.Equal(t, int64(1), count("lru/test/misses"))
	assert.Equal(t, int64(2), count("lru/test/inserts"))
	assert.Equal(t, int64(1), count("lru/test/evictions"))

	other, err := NewCache[int, int](1)
	require.NoError(t, err)
	assert.True(t, errors.Is(other.RegisterMetrics("lru/test", r), metrics.ErrDuplicateMetric))
}

func TestCacheConcurrentAccess(t *testing.T) {
	const (
		workers   = 8
		perWorker = 2000
		capacity  = 64
	)
	c, err := NewCache[int, int](capacity)
	require.NoError(t, err)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				key := (w*perWorker + i) % (capacity * 2)
				c.Add(key, key*10)
				if v, ok := c.Get(key); ok && v != key*10 {
					return fmt.Errorf("key %d holds %d", key, v)
				}
				if n := c.Len(); n > capacity {
					return fmt.Errorf("len %d exceeds capacity", n)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	c.mu.Lock()
	mustVerify(t, &c.cache)
	c.mu.Unlock()

	hits, misses, _, _ := c.Stats()
	assert.Equal(t, int64(workers*perWorker), hits+misses)
}

func BenchmarkCacheParallel(b *testing.B) {
	c, err := NewCache[int, int](8192)
	require.NoError(b, err)
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%4 == 0 {
				c.Add(i%16384, i)
			} else {
				c.Get(i % 16384)
			}
			i++
		}
	})
}

// BenchmarkFastcacheBaseline runs the same mixed workload against fastcache,
// a sharded ring-buffer cache without LRU ordering, as a throughput yardstick.
func BenchmarkFastcacheBaseline(b *testing.B) {
	c := fastcache.New(32 * 1024 * 1024)
	defer c.Reset()

	var key, val [8]byte
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := uint64(i % 16384)
		for j := range key {
			key[j] = byte(k >> (8 * j))
		}
		if i%4 == 0 {
			val = key
			c.Set(key[:], val[:])
		} else {
			c.HasGet(nil, key[:])
		}
	}
}
