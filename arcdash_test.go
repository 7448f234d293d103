// seehuhn.de/go/scan - scan conversion for 2D graphics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashMapCircle(t *testing.T) {
	d := newDashMap(10, 10)

	// 90 chords of one degree each
	want := 90 * 2 * 10 * math.Sin(math.Pi/360)
	assert.InDelta(t, want, d.quarter, 1e-9)
	assert.InDelta(t, 5*math.Pi, d.quarter, 0.01)

	assert.Equal(t, 0.0, d.length(0))
	assert.InDelta(t, d.quarter, d.length(math.Pi/2), 1e-9)
	assert.InDelta(t, 2*d.quarter, d.length(math.Pi), 1e-9)
	assert.InDelta(t, 4*d.quarter, d.length(2*math.Pi), 1e-9)
	assert.InDelta(t, -d.quarter, d.length(-math.Pi/2), 1e-9)
	assert.InDelta(t, d.quarter/2, d.length(math.Pi/4), 1e-9)
}

func TestDashMapInverse(t *testing.T) {
	maps := []*dashMap{
		newDashMap(10, 10),
		newDashMap(20, 5),
		newDashMap(3, 40),
	}
	angles := []float64{0, 0.1, 0.5, 1, math.Pi / 2, 2, 3, 4.5, 6, 7, 13, -0.3, -2, -7}
	for i, d := range maps {
		for _, a := range angles {
			assert.InDelta(t, a, d.angle(d.length(a)), 1e-9, "map %d, angle %g", i, a)
		}
	}
}

func TestDashMapSymmetry(t *testing.T) {
	d := newDashMap(20, 5)
	for _, a := range []float64{0.1, 0.4, 0.7, 1.2} {
		l := d.length(a)
		// reflection at the y-axis
		assert.InDelta(t, d.length(math.Pi)-l, d.length(math.Pi-a), 1e-9)
		// reflection at the x-axis
		assert.InDelta(t, -l, d.length(-a), 1e-9)
	}

	prev := d.length(-1)
	for a := -0.9; a < 7; a += 0.1 {
		l := d.length(a)
		assert.Greater(t, l, prev, "angle %g", a)
		prev = l
	}
}

func TestDashMapFlat(t *testing.T) {
	d := newDashMap(0, 0)
	assert.Equal(t, 0.0, d.quarter)
	assert.Equal(t, 0.0, d.angle(5))
}
