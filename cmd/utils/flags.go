// Copyright 2026 The lrucache Authors
// This file is part of lrucache.
//
// lrucache is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// lrucache is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with lrucache. If not, see <http://www.gnu.org/licenses/>.

// Package utils contains internal helper functions for lrucache commands.
package utils

import (
	"github.com/lrucache/lrucache/internal/flags"
	"github.com/urfave/cli/v2"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	// Cache settings
	CapacityFlag = &cli.IntFlag{
		Name:     "capacity",
		Usage:    "Maximum number of entries held by the cache (must be at least 1)",
		Value:    2,
		Category: flags.CacheCategory,
	}
	MissMarkerFlag = &cli.StringFlag{
		Name:     "miss",
		Usage:    "Text printed for a lookup that misses the cache",
		Value:    "-1",
		Category: flags.CacheCategory,
	}

	// Benchmark settings
	BenchKeysFlag = &cli.IntFlag{
		Name:     "bench.keys",
		Usage:    "Number of distinct keys in the benchmark key space",
		Value:    1024,
		Category: flags.BenchCategory,
	}
	BenchOpsFlag = &cli.IntFlag{
		Name:     "bench.ops",
		Usage:    "Number of operations each worker performs",
		Value:    100000,
		Category: flags.BenchCategory,
	}
	BenchWorkersFlag = &cli.IntFlag{
		Name:     "bench.workers",
		Usage:    "Number of concurrent workers sharing the cache",
		Value:    4,
		Category: flags.BenchCategory,
	}
	BenchWriteRatioFlag = &cli.Float64Flag{
		Name:     "bench.writes",
		Usage:    "Fraction of operations that are writes (0..1)",
		Value:    0.25,
		Category: flags.BenchCategory,
	}
	BenchSeedFlag = &cli.Int64Flag{
		Name:     "bench.seed",
		Usage:    "Random seed of the benchmark workload",
		Value:    1,
		Category: flags.BenchCategory,
	}

	// Metrics settings
	MetricsEnabledFlag = &cli.BoolFlag{
		Name:     "metrics",
		Usage:    "Enable metrics collection and reporting",
		Category: flags.MetricsCategory,
	}
)
