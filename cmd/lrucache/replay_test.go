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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lrucache/lrucache/common/lru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTracer(t *testing.T, capacity int) (*tracer, *bytes.Buffer) {
	t.Helper()
	cache, err := lru.NewCache[string, string](capacity)
	require.NoError(t, err)
	out := new(bytes.Buffer)
	return &tracer{cache: cache, miss: "-1", out: out}, out
}

func TestTracerOperations(t *testing.T) {
	tr, out := newTracer(t, 3)
	trace := `# comment lines and blank lines are skipped

put a 1
put b 2
put c 3
get a
peek b
keys
has b
has zz
oldest
put d 4
get b
len
del c
del c
keys
purge
len
oldest
get a
`
	ops, err := tr.run(strings.NewReader(trace))
	require.NoError(t, err)
	assert.Equal(t, 19, ops)

	want := []string{
		"1",        // get a
		"2",        // peek b
		"b c a",    // keys, peek left b oldest
		"true",     // has b
		"false",    // has zz
		"b 2",      // oldest
		"-1",       // get b, evicted by d
		"3",        // len
		"true",     // del c
		"false",    // del c again
		"a d",      // keys
		"0",        // len after purge
		"-1",       // oldest on empty cache
		"-1",       // get a after purge
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", out.String())
}

func TestTracerErrors(t *testing.T) {
	tests := []struct {
		trace string
		line  string
	}{
		{"put a 1\nfrobnicate\n", "line 2"},
		{"get\n", "line 1"},
		{"put a\n", "line 1"},
		{"# header\nlen 3\n", "line 2"},
	}
	for _, test := range tests {
		tr, _ := newTracer(t, 2)
		_, err := tr.run(strings.NewReader(test.trace))
		require.Error(t, err, "trace %q", test.trace)
		assert.True(t, errors.Is(err, errBadTrace), "trace %q: %v", test.trace, err)
		assert.Contains(t, err.Error(), test.line)
	}
}

func TestReplayCommand(t *testing.T) {
	var (
		dir   = t.TempDir()
		trace = filepath.Join(dir, "trace.txt")
		out   bytes.Buffer
	)
	require.NoError(t, os.WriteFile(trace, []byte("put 1 1\nput 2 2\nget 1\nput 3 3\nget 2\n"), 0644))

	app.Writer = &out
	defer func() { app.Writer = os.Stdout }()

	require.NoError(t, app.Run([]string{"lrucache", "replay", "--miss", "none", trace}))
	assert.Equal(t, "1\nnone\n", out.String())

	out.Reset()
	require.NoError(t, app.Run([]string{"lrucache", "replay", "--capacity", "1", trace}))
	assert.Equal(t, "-1\n-1\n", out.String())
}

func TestReplayCommandInvalidCapacity(t *testing.T) {
	trace := filepath.Join(t.TempDir(), "trace.txt")
	require.NoError(t, os.WriteFile(trace, []byte("len\n"), 0644))

	err := app.Run([]string{"lrucache", "replay", "--capacity", "0", trace})
	require.ErrorIs(t, err, lru.ErrInvalidCapacity)
}
