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
	"os"
	"reflect"
	"slices"
	"unicode"

	"github.com/lrucache/lrucache/cmd/utils"
	"github.com/lrucache/lrucache/internal/flags"
	"github.com/lrucache/lrucache/metrics"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}

	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Export configuration values in a TOML format",
		ArgsUsage:   "<dumpfile>",
		Flags:       slices.Concat([]cli.Flag{configFileFlag}, cacheFlags, benchFlags, metricsFlags),
		Description: "Export configuration values in TOML format (to stdout by default).",
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// CacheConfig holds the settings of the cache under test.
type CacheConfig struct {
	Capacity   int    // maximum number of entries, at least 1
	MissMarker string // printed for lookups that miss
}

// BenchConfig shapes the synthetic workload of the bench command.
type BenchConfig struct {
	Keys       int     // size of the key space
	Ops        int     // operations per worker
	Workers    int     // concurrent goroutines sharing one cache
	WriteRatio float64 // fraction of operations that are writes
	Seed       int64
}

// MetricsConfig toggles metrics collection.
type MetricsConfig struct {
	Enabled bool
}

type lrucacheConfig struct {
	Cache   CacheConfig
	Bench   BenchConfig
	Metrics MetricsConfig
}

// defaultConfig mirrors the defaults of the command line flags.
var defaultConfig = lrucacheConfig{
	Cache: CacheConfig{
		Capacity:   utils.CapacityFlag.Value,
		MissMarker: utils.MissMarkerFlag.Value,
	},
	Bench: BenchConfig{
		Keys:       utils.BenchKeysFlag.Value,
		Ops:        utils.BenchOpsFlag.Value,
		Workers:    utils.BenchWorkersFlag.Value,
		WriteRatio: utils.BenchWriteRatioFlag.Value,
		Seed:       utils.BenchSeedFlag.Value,
	},
}

var errInvalidConfig = errors.New("invalid configuration")

func loadConfig(file string, cfg *lrucacheConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadBaseConfig loads the lrucacheConfig based on the given command line
// parameters and config file.
func loadBaseConfig(ctx *cli.Context) (lrucacheConfig, error) {
	// Load defaults.
	cfg := defaultConfig

	// Load config file.
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(flags.ExpandPath(file), &cfg); err != nil {
			return cfg, err
		}
	}
	// Apply flags.
	setCacheConfig(ctx, &cfg.Cache)
	setBenchConfig(ctx, &cfg.Bench)
	if ctx.Bool(utils.MetricsEnabledFlag.Name) {
		cfg.Metrics.Enabled = true
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	if cfg.Metrics.Enabled {
		metrics.Enable()
	}
	return cfg, nil
}

func setCacheConfig(ctx *cli.Context, cfg *CacheConfig) {
	if ctx.IsSet(utils.CapacityFlag.Name) {
		cfg.Capacity = ctx.Int(utils.CapacityFlag.Name)
	}
	if ctx.IsSet(utils.MissMarkerFlag.Name) {
		cfg.MissMarker = ctx.String(utils.MissMarkerFlag.Name)
	}
}

func setBenchConfig(ctx *cli.Context, cfg *BenchConfig) {
	if ctx.IsSet(utils.BenchKeysFlag.Name) {
		cfg.Keys = ctx.Int(utils.BenchKeysFlag.Name)
	}
	if ctx.IsSet(utils.BenchOpsFlag.Name) {
		cfg.Ops = ctx.Int(utils.BenchOpsFlag.Name)
	}
	if ctx.IsSet(utils.BenchWorkersFlag.Name) {
		cfg.Workers = ctx.Int(utils.BenchWorkersFlag.Name)
	}
	if ctx.IsSet(utils.BenchWriteRatioFlag.Name) {
		cfg.WriteRatio = ctx.Float64(utils.BenchWriteRatioFlag.Name)
	}
	if ctx.IsSet(utils.BenchSeedFlag.Name) {
		cfg.Seed = ctx.Int64(utils.BenchSeedFlag.Name)
	}
}

// validate rejects settings the commands cannot run with. Cache capacity is
// left to the cache constructor, which reports it itself.
func (cfg *lrucacheConfig) validate() error {
	switch {
	case cfg.Bench.Keys < 1:
		return fmt.Errorf("%w: Bench.Keys must be at least 1, have %d", errInvalidConfig, cfg.Bench.Keys)
	case cfg.Bench.Workers < 1:
		return fmt.Errorf("%w: Bench.Workers must be at least 1, have %d", errInvalidConfig, cfg.Bench.Workers)
	case cfg.Bench.Ops < 0:
		return fmt.Errorf("%w: Bench.Ops must not be negative, have %d", errInvalidConfig, cfg.Bench.Ops)
	case cfg.Bench.WriteRatio < 0 || cfg.Bench.WriteRatio > 1:
		return fmt.Errorf("%w: Bench.WriteRatio must be within [0, 1], have %v", errInvalidConfig, cfg.Bench.WriteRatio)
	}
	return nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	dump := os.Stdout
	if ctx.NArg() > 0 {
		dump, err = os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer dump.Close()
	}
	dump.Write(out)

	return nil
}
