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

package debug

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/lrucache/lrucache/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestSetupLogFile(t *testing.T) {
	defer log.SetDefault(log.NewLogger(log.DiscardHandler()))
	defer Exit()

	path := filepath.Join(t.TempDir(), "logs", "lrucache.log")
	ctx := newContext(t, "--log.file", path, "--log.format", "logfmt", "--verbosity", "4")
	require.NoError(t, Setup(ctx))

	log.Debug("written to file", "k", 1)
	Exit()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), "lvl=debug")
}

func TestSetupUnknownFormat(t *testing.T) {
	ctx := newContext(t, "--log.format", "xml")
	assert.ErrorContains(t, Setup(ctx), "unknown log format")
}
