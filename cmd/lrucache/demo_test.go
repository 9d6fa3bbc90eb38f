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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runDemo(&out, "-1"))

	want := `# eviction (capacity 2)
1
-1
-1
3
4

# overwrite (capacity 2)
2
1

# interleaving (capacity 2)
2
-1
3
`
	require.Equal(t, want, out.String())
}

func TestRunDemoMissMarker(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runDemo(&out, "<miss>"))
	require.Contains(t, out.String(), "1\n<miss>\n<miss>\n3\n4\n")
}
