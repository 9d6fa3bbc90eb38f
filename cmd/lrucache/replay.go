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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/lrucache/lrucache/common/lru"
	"github.com/lrucache/lrucache/common/mclock"
	"github.com/lrucache/lrucache/internal/flags"
	"github.com/lrucache/lrucache/log"
	"github.com/lrucache/lrucache/metrics"
	"github.com/urfave/cli/v2"
)

var replayCommand = &cli.Command{
	Action:    replay,
	Name:      "replay",
	Usage:     "Execute an operation trace against a fresh cache",
	ArgsUsage: "<tracefile|->",
	Flags:     slices.Concat([]cli.Flag{configFileFlag}, cacheFlags, metricsFlags),
	Description: `
The replay command reads a trace, one operation per line, and executes it
against an empty cache. Blank lines and lines starting with # are skipped.
Use - to read the trace from standard input.

    put <key> <value>   insert or update a key
    get <key>           print the value and mark the key as recently used
    peek <key>          print the value without touching recency
    has <key>           print whether the key is cached
    del <key>           remove a key, printing whether it was present
    len                 print the number of cached entries
    keys                print all keys, least recently used first
    oldest              print the least recently used key and value
    purge               drop all entries

Lookups that miss print the --miss marker.`,
}

var errBadTrace = errors.New("malformed trace")

// traceArity is the number of arguments each trace operation takes.
var traceArity = map[string]int{
	"put":    2,
	"get":    1,
	"peek":   1,
	"has":    1,
	"del":    1,
	"len":    0,
	"keys":   0,
	"oldest": 0,
	"purge":  0,
}

// tracer executes trace operations against a cache, writing one line of
// output per reading operation.
type tracer struct {
	cache *lru.Cache[string, string]
	miss  string
	out   io.Writer
}

// run executes every operation read from r and returns how many were run.
func (t *tracer) run(r io.Reader) (int, error) {
	var (
		scanner = bufio.NewScanner(r)
		line    int
		ops     int
	)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := t.exec(strings.Fields(text)); err != nil {
			return ops, fmt.Errorf("line %d: %w", line, err)
		}
		ops++
	}
	return ops, scanner.Err()
}

func (t *tracer) exec(fields []string) error {
	op, args := fields[0], fields[1:]
	arity, ok := traceArity[op]
	if !ok {
		return fmt.Errorf("%w: unknown operation %q", errBadTrace, op)
	}
	if len(args) != arity {
		return fmt.Errorf("%w: %s takes %d arguments, have %d", errBadTrace, op, arity, len(args))
	}
	var err error
	switch op {
	case "put":
		t.cache.Add(args[0], args[1])
	case "get":
		err = t.printValue(t.cache.Get(args[0]))
	case "peek":
		err = t.printValue(t.cache.Peek(args[0]))
	case "has":
		_, err = fmt.Fprintln(t.out, strconv.FormatBool(t.cache.Contains(args[0])))
	case "del":
		_, err = fmt.Fprintln(t.out, strconv.FormatBool(t.cache.Remove(args[0])))
	case "len":
		_, err = fmt.Fprintln(t.out, t.cache.Len())
	case "keys":
		_, err = fmt.Fprintln(t.out, strings.Join(t.cache.Keys(), " "))
	case "oldest":
		if key, value, ok := t.cache.GetOldest(); ok {
			_, err = fmt.Fprintln(t.out, key, value)
		} else {
			_, err = fmt.Fprintln(t.out, t.miss)
		}
	case "purge":
		t.cache.Purge()
	}
	return err
}

func (t *tracer) printValue(value string, ok bool) error {
	if !ok {
		value = t.miss
	}
	_, err := fmt.Fprintln(t.out, value)
	return err
}

// replay is the replay command.
func replay(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one trace file argument, use - for standard input")
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	cache, err := lru.NewCache[string, string](cfg.Cache.Capacity)
	if err != nil {
		return err
	}
	if metrics.Enabled() {
		if err := cache.RegisterMetrics("lrucache/replay", metrics.DefaultRegistry); err != nil {
			return err
		}
	}

	var in io.Reader = os.Stdin
	if path := ctx.Args().First(); path != "-" {
		f, err := os.Open(flags.ExpandPath(path))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	out := bufio.NewWriter(ctx.App.Writer)
	defer out.Flush()

	var (
		start = mclock.Now()
		t     = &tracer{cache: cache, miss: cfg.Cache.MissMarker, out: out}
	)
	ops, err := t.run(in)
	if err != nil {
		return err
	}
	hits, misses, inserts, evictions := cache.Stats()
	log.Info("Trace replayed", "ops", ops, "len", cache.Len(), "hits", hits, "misses", misses,
		"inserts", inserts, "evictions", evictions, "elapsed", mclock.Since(start))
	return nil
}
