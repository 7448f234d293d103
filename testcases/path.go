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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var pathCases = []TestCase{
	{
		Name:   "cubic",
		Shape:  Curve{Data: cubicCurve(10, 50, 20, 10, 44, 10, 54, 50)},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "quadratic_stroke",
		Shape:  Curve{Data: quadraticCurveOpen(10, 50, 32, 0, 54, 50)},
		Width:  64,
		Height: 64,
		Op:     wide(4, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "ring_nonzero",
		Shape:  Curve{Data: ringShape(32, 32, 25, 12)},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ring_evenodd",
		Shape:  Curve{Data: ringShape(32, 32, 25, 12)},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "circle_scaled",
		Shape:  Curve{Data: circle(0, 0, 10), CTM: matrix.Scale(2.5, 1.5).Translate(32, 32)},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "circle_stroke",
		Shape:  Curve{Data: circle(32, 32, 24)},
		Width:  64,
		Height: 64,
		Op:     wide(3, graphics.LineCapButt, graphics.LineJoinMiter),
	},
}

// quadraticCurveOpen builds an open path with a quadratic Bezier curve (for stroking).
func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// circle builds a closed circle from four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).                                 // start at right
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)). // top-right quadrant
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)). // top-left quadrant
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)). // bottom-left quadrant
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)). // bottom-right quadrant
		Close()
}

// ringShape builds two nested squares with the same orientation.  The
// inner square is a hole for the even-odd rule only.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	p := &path.Data{}
	for _, s := range []float64{outerSize, innerSize} {
		p.MoveTo(pt(cx-s, cy-s)).
			LineTo(pt(cx+s, cy-s)).
			LineTo(pt(cx+s, cy+s)).
			LineTo(pt(cx-s, cy+s)).
			Close()
	}
	return p
}
