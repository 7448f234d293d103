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

	"seehuhn.de/go/pdf/graphics"
)

func wide(width int, capStyle graphics.LineCapStyle, join graphics.LineJoinStyle) Stroke {
	return Stroke{
		Width:      width,
		Cap:        capStyle,
		Join:       join,
		MiterLimit: 10,
	}
}

var wideCases = []TestCase{
	{
		Name:   "line_butt",
		Shape:  Polyline{Points: []image.Point{ip(10, 32), ip(54, 32)}},
		Width:  64,
		Height: 64,
		Op:     wide(8, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "line_round",
		Shape:  Polyline{Points: []image.Point{ip(10, 32), ip(54, 32)}},
		Width:  64,
		Height: 64,
		Op:     wide(8, graphics.LineCapRound, graphics.LineJoinMiter),
	},
	{
		Name:   "line_square",
		Shape:  Polyline{Points: []image.Point{ip(10, 32), ip(54, 32)}},
		Width:  64,
		Height: 64,
		Op:     wide(8, graphics.LineCapSquare, graphics.LineJoinMiter),
	},
	{
		Name:   "diagonal",
		Shape:  Polyline{Points: []image.Point{ip(8, 50), ip(56, 14)}},
		Width:  64,
		Height: 64,
		Op:     wide(7, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "corner_miter",
		Shape:  Polyline{Points: []image.Point{ip(10, 50), ip(32, 14), ip(54, 50)}},
		Width:  64,
		Height: 64,
		Op:     wide(6, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "corner_round",
		Shape:  Polyline{Points: []image.Point{ip(10, 50), ip(32, 14), ip(54, 50)}},
		Width:  64,
		Height: 64,
		Op:     wide(6, graphics.LineCapButt, graphics.LineJoinRound),
	},
	{
		Name:   "corner_bevel",
		Shape:  Polyline{Points: []image.Point{ip(10, 50), ip(32, 14), ip(54, 50)}},
		Width:  64,
		Height: 64,
		Op:     wide(6, graphics.LineCapButt, graphics.LineJoinBevel),
	},
	{
		Name:   "sharp_miter",
		Shape:  Polyline{Points: []image.Point{ip(6, 40), ip(58, 30), ip(6, 20)}},
		Width:  64,
		Height: 64,
		Op:     wide(5, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "closed_square",
		Shape:  Polygon{Points: []image.Point{ip(12, 12), ip(52, 12), ip(52, 52), ip(12, 52)}},
		Width:  64,
		Height: 64,
		Op:     wide(6, graphics.LineCapRound, graphics.LineJoinMiter),
	},
	{
		Name:   "self_overlap",
		Shape:  Polyline{Points: []image.Point{ip(8, 8), ip(56, 56), ip(56, 8), ip(8, 56)}},
		Width:  64,
		Height: 64,
		Op:     wide(9, graphics.LineCapRound, graphics.LineJoinRound),
	},
}

// circlePoint returns the i-th of n equally spaced points on a circle.
func circlePoint(cx, cy, r, i, n int) image.Point {
	angle := 2 * math.Pi * float64(i) / float64(n)
	return ip(
		cx+int(math.Round(float64(r)*math.Cos(angle))),
		cy-int(math.Round(float64(r)*math.Sin(angle))),
	)
}
