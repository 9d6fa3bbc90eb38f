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

// Package metrics provides counters and gauges collected in a named registry.
//
// Collection is off by default; metric types still work when disabled, the
// switch only tells owners whether to bother registering them.
package metrics

import "sync/atomic"

var metricsEnabled atomic.Bool

// Enabled is checked by packages deciding whether to register their metrics.
func Enabled() bool {
	return metricsEnabled.Load()
}

// Enable turns metrics collection on. It should be called before any metric
// is registered, typically while parsing command line flags.
func Enable() {
	metricsEnabled.Store(true)
}
