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

var thin = Stroke{
	Cap:        graphics.LineCapButt,
	Join:       graphics.LineJoinMiter,
	MiterLimit: 10,
}

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Shape:  Polyline{Points: []image.Point{ip(4, 8), ip(60, 8)}},
		Width:  64,
		Height: 16,
		Op:     thin,
	},
	{
		Name:   "octants",
		Shape:  Polyline{Points: star(32, 32, 28, 16)},
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "zigzag",
		Shape:  Polyline{Points: []image.Point{ip(4, 50), ip(16, 10), ip(28, 50), ip(40, 10), ip(52, 50), ip(60, 30)}},
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "clipped",
		Shape:  Polyline{Points: []image.Point{ip(-30, -7), ip(90, 70), ip(70, -20), ip(-10, 40)}},
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "closed",
		Shape:  Polyline{Points: []image.Point{ip(10, 10), ip(54, 14), ip(40, 54), ip(10, 10)}},
		Width:  64,
		Height: 64,
		Op:     thin,
	},
}

// star returns a polyline which visits the centre and n points on a
// circle in turn, so that lines in all octants are drawn.
func star(cx, cy, r, n int) []image.Point {
	res := []image.Point{ip(cx, cy)}
	for i := range n {
		p := circlePoint(cx, cy, r, i, n)
		res = append(res, p, ip(cx, cy))
	}
	return res
}
