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

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/lrucache/lrucache/common/lru"
	"github.com/lrucache/lrucache/common/mclock"
	"github.com/lrucache/lrucache/log"
	"github.com/lrucache/lrucache/metrics"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var benchCommand = &cli.Command{
	Action:    bench,
	Name:      "bench",
	Usage:     "Run a concurrent synthetic workload against the cache",
	ArgsUsage: " ",
	Flags:     slices.Concat([]cli.Flag{configFileFlag}, cacheFlags, benchFlags, metricsFlags),
	Description: `
The bench command runs --bench.workers goroutines against one shared cache.
Each performs --bench.ops operations on keys drawn from a Zipf distribution
over --bench.keys keys, writing with probability --bench.writes and reading
otherwise. Throughput and hit ratio are printed when all workers are done.`,
}

// Shape of the key distribution, a few hot keys and a long tail.
const (
	zipfS = 1.1
	zipfV = 1.0
)

// benchCheckInterval is how many operations a worker performs between checks
// for cancellation.
const benchCheckInterval = 1024

type benchResult struct {
	ops       int64
	elapsed   time.Duration
	hits      int64
	misses    int64
	inserts   int64
	evictions int64
}

func (r benchResult) hitRatio() float64 {
	if r.hits+r.misses == 0 {
		return 0
	}
	return float64(r.hits) / float64(r.hits+r.misses)
}

func (r benchResult) opsPerSecond() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.ops) / r.elapsed.Seconds()
}

// runBench drives the configured workload against cache and reports what the
// cache counted. The workload is deterministic per worker for a given seed,
// the interleaving between workers is not.
func runBench(ctx context.Context, cache *lru.Cache[uint64, uint64], cfg BenchConfig, clock mclock.Clock) (benchResult, error) {
	var (
		g, gctx = errgroup.WithContext(ctx)
		start   = clock.Now()
	)
	for w := 0; w < cfg.Workers; w++ {
		seed := cfg.Seed + int64(w)
		g.Go(func() error {
			var (
				rng  = rand.New(rand.NewSource(seed))
				zipf = rand.NewZipf(rng, zipfS, zipfV, uint64(cfg.Keys-1))
			)
			for i := 0; i < cfg.Ops; i++ {
				if i%benchCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				key := zipf.Uint64()
				if rng.Float64() < cfg.WriteRatio {
					cache.Add(key, key)
				} else {
					cache.Get(key)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return benchResult{}, err
	}
	res := benchResult{
		ops:     int64(cfg.Workers) * int64(cfg.Ops),
		elapsed: clock.Now().Sub(start),
	}
	res.hits, res.misses, res.inserts, res.evictions = cache.Stats()
	return res, nil
}

// bench is the bench command.
func bench(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	cache, err := lru.NewCache[uint64, uint64](cfg.Cache.Capacity)
	if err != nil {
		return err
	}
	var size *metrics.Gauge
	if metrics.Enabled() {
		if err := cache.RegisterMetrics("lrucache/bench", metrics.DefaultRegistry); err != nil {
			return err
		}
		size = metrics.NewRegisteredGauge("lrucache/bench/len", metrics.DefaultRegistry)
	}
	log.Info("Starting benchmark", "capacity", cfg.Cache.Capacity, "keys", cfg.Bench.Keys,
		"workers", cfg.Bench.Workers, "ops", cfg.Bench.Ops, "writes", cfg.Bench.WriteRatio, "seed", cfg.Bench.Seed)

	res, err := runBench(ctx.Context, cache, cfg.Bench, mclock.System{})
	if err != nil {
		return err
	}
	if size != nil {
		size.Update(int64(cache.Len()))
	}
	printBenchResult(ctx.App.Writer, res)
	if metrics.Enabled() {
		printMetrics(ctx.App.Writer, metrics.DefaultRegistry)
	}
	return nil
}

func printBenchResult(w io.Writer, res benchResult) {
	fmt.Fprintf(w, "ops:        %d\n", res.ops)
	fmt.Fprintf(w, "elapsed:    %v\n", res.elapsed)
	fmt.Fprintf(w, "ops/s:      %.0f\n", res.opsPerSecond())
	fmt.Fprintf(w, "hit ratio:  %.4f\n", res.hitRatio())
	fmt.Fprintf(w, "inserts:    %d\n", res.inserts)
	fmt.Fprintf(w, "evictions:  %d\n", res.evictions)
}

// printMetrics writes every counter and gauge in r, ordered by name.
func printMetrics(w io.Writer, r metrics.Registry) {
	r.Each(func(name string, m any) {
		switch m := m.(type) {
		case *metrics.Counter:
			fmt.Fprintf(w, "%s: %d\n", name, m.Snapshot().Count())
		case *metrics.Gauge:
			fmt.Fprintf(w, "%s: %d\n", name, m.Snapshot().Value())
		}
	})
}
