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

	"seehuhn.de/go/pdf/graphics"
)

func dashed(width int, dash []int, offset int, double bool) Stroke {
	return Stroke{
		Width:      width,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
		Dash:       dash,
		DashOffset: offset,
		Double:     double,
	}
}

var dashCases = []TestCase{
	{
		Name:   "thin_3_2",
		Shape:  Polyline{Points: []image.Point{ip(0, 2), ip(10, 2)}},
		Width:  16,
		Height: 4,
		Op:     dashed(0, []int{3, 2}, 0, false),
	},
	{
		Name:   "thin_offset",
		Shape:  Polyline{Points: []image.Point{ip(4, 4), ip(60, 60)}},
		Width:  64,
		Height: 64,
		Op:     dashed(0, []int{5, 3}, 2, false),
	},
	{
		Name:   "thin_double",
		Shape:  Polyline{Points: []image.Point{ip(4, 50), ip(32, 10), ip(60, 50)}},
		Width:  64,
		Height: 64,
		Op:     dashed(0, []int{6, 4}, 0, true),
	},
	{
		Name:   "thin_odd_pattern",
		Shape:  Polyline{Points: []image.Point{ip(4, 32), ip(60, 32)}},
		Width:  64,
		Height: 64,
		Op:     dashed(0, []int{5, 3, 8}, 0, false),
	},
	{
		Name:   "wide_corner",
		Shape:  Polyline{Points: []image.Point{ip(8, 54), ip(32, 10), ip(56, 54)}},
		Width:  64,
		Height: 64,
		Op:     dashed(5, []int{10, 6}, 0, false),
	},
	{
		Name:   "wide_double",
		Shape:  Polyline{Points: []image.Point{ip(6, 32), ip(58, 32)}},
		Width:  64,
		Height: 64,
		Op:     dashed(7, []int{9, 5}, 3, true),
	},
	{
		Name:   "wide_double_closed",
		Shape:  Polyline{Points: []image.Point{ip(10, 10), ip(54, 10), ip(54, 54), ip(10, 54), ip(10, 10)}},
		Width:  64,
		Height: 64,
		Op:     dashed(5, []int{12, 8}, 0, true),
	},
	{
		Name:   "arc_dashed",
		Shape:  Arcs{{X: 8, Y: 12, W: 48, H: 40, Angle1: 0, Angle2: 360 * 64}},
		Width:  64,
		Height: 64,
		Op:     dashed(4, []int{10, 5}, 0, false),
	},
	{
		Name:   "arc_double",
		Shape:  Arcs{{X: 8, Y: 8, W: 48, H: 48, Angle1: 30 * 64, Angle2: 250 * 64}},
		Width:  64,
		Height: 64,
		Op:     dashed(5, []int{8, 8}, 0, true),
	},
}
