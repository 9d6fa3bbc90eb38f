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

package mclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAbsTimeArithmetic(t *testing.T) {
	var start AbsTime = 1000
	end := start.Add(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, end.Sub(start))
	assert.Equal(t, -250*time.Millisecond, start.Sub(end))
}

func TestNowIsMonotonic(t *testing.T) {
	a := Now()
	b := Now()
	assert.GreaterOrEqual(t, int64(b), int64(a))
	assert.GreaterOrEqual(t, Since(a), time.Duration(0))
}

func TestManualClock(t *testing.T) {
	var (
		m     Manual
		clock Clock = &m
	)
	start := clock.Now()
	m.Run(3 * time.Second)
	assert.Equal(t, 3*time.Second, clock.Now().Sub(start))
}
