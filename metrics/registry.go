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
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrDuplicateMetric is returned by Registry.Register when a metric already
// exists. If you mean to Register that metric you must first Unregister the
// existing metric.
var ErrDuplicateMetric = errors.New("duplicate metric")

// A Registry holds references to a set of metrics by name and can iterate
// over them, calling callback functions provided by the user.
type Registry interface {
	// Each calls the given function for each registered metric, in name order.
	Each(func(string, any))

	// Get the metric by the given name or nil if none is registered.
	Get(string) any

	// GetOrRegister gets an existing metric or registers the one returned
	// by the given constructor.
	GetOrRegister(string, func() any) any

	// Register the given metric under the given name.
	Register(string, any) error

	// Unregister the metric with the given name.
	Unregister(string)
}

// StandardRegistry is the standard implementation of a Registry, a concurrent
// map of names to metrics.
type StandardRegistry struct {
	metrics sync.Map
}

// NewRegistry creates a new registry.
func NewRegistry() *StandardRegistry {
	return new(StandardRegistry)
}

// NewPrefixedChildRegistry creates a registry that prefixes every name with
// prefix before handing it to parent.
func NewPrefixedChildRegistry(parent Registry, prefix string) Registry {
	return &PrefixedRegistry{underlying: parent, prefix: prefix}
}

// Each calls the given function for each registered metric.
func (r *StandardRegistry) Each(f func(string, any)) {
	var names []string
	vals := make(map[string]any)
	r.metrics.Range(func(key, value any) bool {
		names = append(names, key.(string))
		vals[key.(string)] = value
		return true
	})
	sort.Strings(names)
	for _, name := range names {
		f(name, vals[name])
	}
}

// Get the metric by the given name or nil if none is registered.
func (r *StandardRegistry) Get(name string) any {
	item, _ := r.metrics.Load(name)
	return item
}

// GetOrRegister gets an existing metric or creates and registers a new one.
// Threadsafe alternative to calling Get and Register on failure.
func (r *StandardRegistry) GetOrRegister(name string, ctor func() any) any {
	if metric, ok := r.metrics.Load(name); ok {
		return metric
	}
	item, _ := r.metrics.LoadOrStore(name, ctor())
	return item
}

// Register the given metric under the given name. Returns a ErrDuplicateMetric
// if a metric by the given name is already registered.
func (r *StandardRegistry) Register(name string, i any) error {
	switch i.(type) {
	case *Counter, *Gauge:
	default:
		return fmt.Errorf("unsupported metric type %T", i)
	}
	if _, loaded := r.metrics.LoadOrStore(name, i); loaded {
		return fmt.Errorf("%w: %s", ErrDuplicateMetric, name)
	}
	return nil
}

// Unregister the metric with the given name.
func (r *StandardRegistry) Unregister(name string) {
	r.metrics.Delete(name)
}

// PrefixedRegistry namespaces every metric of an underlying registry.
type PrefixedRegistry struct {
	underlying Registry
	prefix     string
}

// Each calls the given function for each metric carrying this registry's prefix.
func (r *PrefixedRegistry) Each(fn func(string, any)) {
	r.underlying.Each(func(name string, i any) {
		if strings.HasPrefix(name, r.prefix) {
			fn(name, i)
		}
	})
}

// Get the metric by the given name or nil if none is registered.
func (r *PrefixedRegistry) Get(name string) any {
	return r.underlying.Get(r.prefix + name)
}

// GetOrRegister gets an existing metric or registers the one returned by ctor.
func (r *PrefixedRegistry) GetOrRegister(name string, ctor func() any) any {
	return r.underlying.GetOrRegister(r.prefix+name, ctor)
}

// Register the given metric under the given name. The name will be prefixed.
func (r *PrefixedRegistry) Register(name string, metric any) error {
	return r.underlying.Register(r.prefix+name, metric)
}

// Unregister the metric with the given name. The name will be prefixed.
func (r *PrefixedRegistry) Unregister(name string) {
	r.underlying.Unregister(r.prefix + name)
}

// DefaultRegistry is the registry used when none is given.
var DefaultRegistry Registry = NewRegistry()

// Each calls f for every metric of the DefaultRegistry.
func Each(f func(string, any)) {
	DefaultRegistry.Each(f)
}

// Get the metric by the given name or nil if none is registered.
func Get(name string) any {
	return DefaultRegistry.Get(name)
}

// Register the given metric under the given name in the DefaultRegistry.
func Register(name string, i any) error {
	return DefaultRegistry.Register(name, i)
}

// Unregister the metric with the given name from the DefaultRegistry.
func Unregister(name string) {
	DefaultRegistry.Unregister(name)
}
