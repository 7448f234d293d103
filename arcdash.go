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
	"sort"
)

// dashMapSize is the number of samples per quadrant, one per degree.
const dashMapSize = 91

// dashMap converts between parametric angles on an ellipse and arc
// length, so that dash lengths can be applied to arcs.  The table holds
// the length of the arc from angle 0 to each whole degree of the first
// quadrant.  The other quadrants are obtained by symmetry.
type dashMap struct {
	m       [dashMapSize]float64
	quarter float64 // length of one quadrant
}

func newDashMap(a, b float64) *dashMap {
	d := &dashMap{}
	prevX, prevY := a, 0.0
	for i := 1; i < dashMapSize; i++ {
		t := float64(i) * math.Pi / 180
		x, y := a*math.Cos(t), b*math.Sin(t)
		if i == dashMapSize-1 {
			x, y = 0, b
		}
		d.m[i] = d.m[i-1] + math.Hypot(x-prevX, y-prevY)
		prevX, prevY = x, y
	}
	d.quarter = d.m[dashMapSize-1]
	return d
}

// inQuadrant returns the length from angle 0 to deg degrees, for
// 0 <= deg <= 90.
func (d *dashMap) inQuadrant(deg float64) float64 {
	i := int(deg)
	if i >= dashMapSize-1 {
		return d.quarter
	}
	f := deg - float64(i)
	return d.m[i] + f*(d.m[i+1]-d.m[i])
}

// degInQuadrant is the inverse of inQuadrant.
func (d *dashMap) degInQuadrant(s float64) float64 {
	i := sort.SearchFloat64s(d.m[:], s)
	switch {
	case i == 0:
		return 0
	case i >= dashMapSize:
		return 90
	}
	step := d.m[i] - d.m[i-1]
	if step <= 0 {
		return float64(i)
	}
	return float64(i-1) + (s-d.m[i-1])/step
}

// length returns the arc length from angle 0 to angle t (radians).  The
// result is negative for negative angles and grows by four quadrants per
// full turn.
func (d *dashMap) length(t float64) float64 {
	deg := t * 180 / math.Pi
	q := math.Floor(deg / 90)
	r := deg - q*90
	var l float64
	if int(q)&1 == 0 {
		l = d.inQuadrant(r)
	} else {
		l = d.quarter - d.inQuadrant(90-r)
	}
	return q*d.quarter + l
}

// angle is the inverse of length.
func (d *dashMap) angle(s float64) float64 {
	if d.quarter <= 0 {
		return 0
	}
	q := math.Floor(s / d.quarter)
	rem := s - q*d.quarter
	var r float64
	if int(q)&1 == 0 {
		r = d.degInQuadrant(rem)
	} else {
		r = 90 - d.degInQuadrant(d.quarter-rem)
	}
	return (q*90 + r) * math.Pi / 180
}
