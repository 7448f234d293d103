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

import "seehuhn.de/go/pdf/graphics"

var arcCases = []TestCase{
	{
		Name:   "circle_fill",
		Shape:  Arcs{{X: 5, Y: 5, W: 10, H: 10, Angle2: 360 * 64}},
		Width:  20,
		Height: 20,
		Op:     Fill{},
	},
	{
		Name:   "ellipse_fill",
		Shape:  Arcs{{X: 4, Y: 14, W: 56, H: 36, Angle2: 360 * 64}},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "pie",
		Shape:  Arcs{{X: 4, Y: 4, W: 56, H: 56, Angle1: 20 * 64, Angle2: 120 * 64}},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "pie_large",
		Shape:  Arcs{{X: 4, Y: 10, W: 56, H: 44, Angle1: 45 * 64, Angle2: -270 * 64}},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "chord",
		Shape:  Arcs{{X: 4, Y: 4, W: 56, H: 56, Angle1: 200 * 64, Angle2: 200 * 64}},
		Width:  64,
		Height: 64,
		Op:     Fill{Chord: true},
	},
	{
		Name:   "thin_circle",
		Shape:  Arcs{{X: 6, Y: 6, W: 52, H: 52, Angle2: 360 * 64}},
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "thin_arc",
		Shape:  Arcs{{X: 6, Y: 16, W: 52, H: 32, Angle1: 10 * 64, Angle2: 200 * 64}},
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "wide_circle",
		Shape:  Arcs{{X: 10, Y: 10, W: 44, H: 44, Angle2: 360 * 64}},
		Width:  64,
		Height: 64,
		Op:     wide(6, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "wide_ellipse",
		Shape:  Arcs{{X: 6, Y: 16, W: 52, H: 32, Angle2: 360 * 64}},
		Width:  64,
		Height: 64,
		Op:     wide(5, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "wide_arc_round",
		Shape:  Arcs{{X: 8, Y: 8, W: 48, H: 48, Angle1: 30 * 64, Angle2: 200 * 64}},
		Width:  64,
		Height: 64,
		Op:     wide(7, graphics.LineCapRound, graphics.LineJoinMiter),
	},
	{
		Name: "joined_arcs",
		Shape: Arcs{
			{X: 8, Y: 16, W: 24, H: 24, Angle1: 180 * 64, Angle2: -180 * 64},
			{X: 32, Y: 16, W: 24, H: 24, Angle1: 180 * 64, Angle2: 180 * 64},
		},
		Width:  64,
		Height: 64,
		Op:     wide(5, graphics.LineCapButt, graphics.LineJoinRound),
	},
	{
		Name:   "flat",
		Shape:  Arcs{{X: 8, Y: 32, W: 48, H: 0, Angle1: 0, Angle2: 180 * 64}},
		Width:  64,
		Height: 64,
		Op:     wide(4, graphics.LineCapButt, graphics.LineJoinMiter),
	},
}
