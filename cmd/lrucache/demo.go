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
	"fmt"
	"io"
	"strings"

	"github.com/lrucache/lrucache/cmd/utils"
	"github.com/lrucache/lrucache/common/lru"
	"github.com/urfave/cli/v2"
)

var demoCommand = &cli.Command{
	Action:    demo,
	Name:      "demo",
	Usage:     "Run the built-in cache scenarios",
	ArgsUsage: " ",
	Flags:     []cli.Flag{configFileFlag, utils.MissMarkerFlag},
	Description: `
The demo command replays a few short traces against a cache of capacity two
and prints the result of every lookup, using the --miss marker for misses.`,
}

// demoScenarios are run in order by the demo command.
var demoScenarios = []struct {
	name     string
	capacity int
	trace    string
}{
	{
		name:     "eviction",
		capacity: 2,
		trace: `put 1 1
put 2 2
get 1
put 3 3
get 2
put 4 4
get 1
get 3
get 4`,
	},
	{
		name:     "overwrite",
		capacity: 2,
		trace: `put 1 1
put 1 2
get 1
len`,
	},
	{
		name:     "interleaving",
		capacity: 2,
		trace: `put 1 1
put 2 2
put 3 3
get 2
get 1
get 3`,
	},
}

// demo is the demo command, and the default action of the app.
func demo(ctx *cli.Context) error {
	if args := ctx.Args().Slice(); len(args) > 0 {
		return fmt.Errorf("invalid command: %s", args[0])
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	return runDemo(ctx.App.Writer, cfg.Cache.MissMarker)
}

func runDemo(w io.Writer, miss string) error {
	for i, s := range demoScenarios {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "# %s (capacity %d)\n", s.name, s.capacity)

		cache, err := lru.NewCache[string, string](s.capacity)
		if err != nil {
			return err
		}
		t := &tracer{cache: cache, miss: miss, out: w}
		if _, err := t.run(strings.NewReader(s.trace)); err != nil {
			return fmt.Errorf("scenario %s: %w", s.name, err)
		}
	}
	return nil
}
