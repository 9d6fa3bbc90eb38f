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

// lrucache is a command-line workbench for the LRU cache library.
package main

import (
	"os"
	"slices"

	"github.com/lrucache/lrucache/cmd/utils"
	"github.com/lrucache/lrucache/internal/debug"
	"github.com/lrucache/lrucache/internal/flags"
	"github.com/urfave/cli/v2"
)

const (
	clientIdentifier = "lrucache" // Name of the app in help output
)

var (
	cacheFlags = []cli.Flag{
		utils.CapacityFlag,
		utils.MissMarkerFlag,
	}

	benchFlags = []cli.Flag{
		utils.BenchKeysFlag,
		utils.BenchOpsFlag,
		utils.BenchWorkersFlag,
		utils.BenchWriteRatioFlag,
		utils.BenchSeedFlag,
	}

	metricsFlags = []cli.Flag{
		utils.MetricsEnabledFlag,
	}
)

var app = flags.NewApp("the LRU cache command line interface")

func init() {
	// Initialize the CLI app and run the demo by default
	app.Name = clientIdentifier
	app.Action = demo
	app.Commands = []*cli.Command{
		// See demo.go
		demoCommand,
		// See replay.go
		replayCommand,
		// See bench.go
		benchCommand,
		// See config.go
		dumpConfigCommand,
		// See misccmd.go
		versionCommand,
	}
	slices.SortFunc(app.Commands, func(a, b *cli.Command) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})

	app.Flags = slices.Concat(
		[]cli.Flag{configFileFlag},
		metricsFlags,
		debug.Flags,
	)

	app.Before = func(ctx *cli.Context) error {
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		utils.Fatalf("%v", err)
	}
}
