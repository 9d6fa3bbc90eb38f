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

package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndEach(t *testing.T) {
	r := NewRegistry()
	hits := NewRegisteredCounter("cache/hits", r)
	size := NewRegisteredGauge("cache/size", r)
	hits.Inc(3)
	size.Update(7)

	var names []string
	r.Each(func(name string, _ any) { names = append(names, name) })
	assert.Equal(t, []string{"cache/hits", "cache/size"}, names)
	assert.Equal(t, int64(3), r.Get("cache/hits").(*Counter).Snapshot().Count())
	assert.Equal(t, int64(7), r.Get("cache/size").(*Gauge).Snapshot().Value())
}

func TestRegistryDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("a", NewCounter()))
	err := r.Register("a", NewCounter())
	require.True(t, errors.Is(err, ErrDuplicateMetric), "got %v", err)

	r.Unregister("a")
	require.NoError(t, r.Register("a", NewCounter()))
}

func TestRegistryRejectsUnknownType(t *testing.T) {
	r := NewRegistry()
	require.Error(t, r.Register("x", 42))
	assert.Nil(t, r.Get("x"))
}

func TestGetOrRegisterCounter(t *testing.T) {
	r := NewRegistry()
	c1 := GetOrRegisterCounter("c", r)
	c1.Inc(1)
	c2 := GetOrRegisterCounter("c", r)
	assert.Same(t, c1, c2)
	assert.Equal(t, int64(1), c2.Snapshot().Count())
}

func TestPrefixedRegistry(t *testing.T) {
	parent := NewRegistry()
	child := NewPrefixedChildRegistry(parent, "lru/")
	c := NewRegisteredCounter("evictions", child)
	c.Inc(2)
	NewRegisteredCounter("other", parent)

	assert.Same(t, c, parent.Get("lru/evictions"))
	assert.Same(t, c, child.Get("evictions"))

	var names []string
	child.Each(func(name string, _ any) { names = append(names, name) })
	assert.Equal(t, []string{"lru/evictions"}, names)
}

func TestCounterAndGauge(t *testing.T) {
	c := NewCounter()
	c.Inc(5)
	c.Dec(2)
	assert.Equal(t, int64(3), c.Snapshot().Count())
	c.Clear()
	assert.Zero(t, c.Snapshot().Count())

	g := NewGauge()
	g.Update(4)
	g.UpdateIfGt(3)
	assert.Equal(t, int64(4), g.Snapshot().Value())
	g.UpdateIfGt(9)
	assert.Equal(t, int64(9), g.Snapshot().Value())
	g.Dec(1)
	g.Inc(2)
	assert.Equal(t, int64(10), g.Snapshot().Value())
}
