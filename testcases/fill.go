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

package testcases

import (
	"image"
	"math"
)

var fillCases = []TestCase{
	{
		Name:   "square",
		Shape:  Polygon{Points: []image.Point{ip(0, 0), ip(4, 0), ip(4, 4), ip(0, 4)}},
		Width:  8,
		Height: 8,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "triangle_convex",
		Shape:  Polygon{Points: []image.Point{ip(10, 50), ip(32, 10), ip(54, 50)}, Convex: true},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "triangle_general",
		Shape:  Polygon{Points: []image.Point{ip(10, 50), ip(32, 10), ip(54, 50)}},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "star_nonzero",
		Shape:  Polygon{Points: fivePointStar(32, 32, 25)},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_evenodd",
		Shape:  Polygon{Points: fivePointStar(32, 32, 25)},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "clipped",
		Shape:  Polygon{Points: []image.Point{ip(-20, -10), ip(50, 20), ip(20, 80)}},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "comb",
		Shape:  Polygon{Points: comb(8, 8, 48, 48, 6)},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
}

// fivePointStar returns the vertices of a five-pointed star
// (self-intersecting).
func fivePointStar(cx, cy, r float64) []image.Point {
	var corners [5]image.Point
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		corners[i] = ip(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		)
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3
	order := []int{0, 2, 4, 1, 3}
	res := make([]image.Point, 0, len(order))
	for _, i := range order {
		res = append(res, corners[i])
	}
	return res
}

// comb returns a non-convex polygon with n teeth pointing down.
func comb(x, y, w, h, n int) []image.Point {
	res := []image.Point{ip(x, y), ip(x+w, y)}
	step := w / n
	for i := n; i > 0; i-- {
		x0 := x + (i-1)*step
		res = append(res,
			ip(x0+step, y+h),
			ip(x0+step/2, y+h/3),
		)
	}
	return append(res, ip(x, y+h))
}
