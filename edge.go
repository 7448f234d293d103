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

	"seehuhn.de/go/geom/vec"
)

// slopeScale is used to turn non-integer edge directions into integer
// slopes.  Edges of wide lines use the exact integer direction of the
// segment instead.
const slopeScale = 1 << 16

// polySlope is the direction of one polygon edge.  The edge is the line
// x*dy - y*dx = k, in coordinates relative to the polygon origin.
type polySlope struct {
	dx, dy int
	k      float64
}

// slopeThrough returns the slope with direction (dx, dy) through p.
func slopeThrough(p vec.Vec2, dx, dy int) polySlope {
	return polySlope{
		dx: dx,
		dy: dy,
		k:  p.X*float64(dy) - p.Y*float64(dx),
	}
}

// slopeBetween returns a slope for the edge from a to b.  Integer
// directions are used unchanged, other directions are scaled and rounded.
func slopeBetween(a, b vec.Vec2) polySlope {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx != math.Trunc(dx) || dy != math.Trunc(dy) {
		dx = math.Round(dx * slopeScale)
		dy = math.Round(dy * slopeScale)
	}
	return slopeThrough(a, int(dx), int(dy))
}

// polyEdge is one side of a convex polygon, stepped down one scanline at
// a time with exact integer arithmetic.  The error term e is kept in the
// range (-dy, 0].
type polyEdge struct {
	height int // number of scanlines covered by the edge
	x      int // pixel position on the current scanline
	stepx  int // whole pixels per scanline
	signdx int
	e      int
	dx, dy int // fractional part of the slope, 0 <= dx < dy
}

// buildEdge initialises edge for the line x*dy - y*dx = k, starting at
// the first scanline at or below y0.  For left edges, x is the first
// pixel whose centre is on or right of the line.  For right edges, x is
// the last pixel whose centre is strictly left of the line.  The offsets
// xi and yi are added to the result.  The return value is the first
// scanline covered by the edge.
func buildEdge(y0, k float64, dx, dy, xi, yi int, left bool, edge *polyEdge) int {
	if dy < 0 {
		dy = -dy
		dx = -dx
		k = -k
	}

	y := int(math.Ceil(y0))
	xady := int(math.Ceil(k)) + y*dx
	var x int
	if xady <= 0 {
		x = -(-xady / dy) - 1
	} else {
		x = (xady - 1) / dy
	}
	e := xady - x*dy

	if dx >= 0 {
		edge.signdx = 1
		edge.stepx = dx / dy
		edge.dx = dx % dy
	} else {
		edge.signdx = -1
		edge.stepx = -(-dx / dy)
		edge.dx = -dx % dy
		e = dy - e + 1
	}
	edge.dy = dy
	edge.x = x + xi
	if left {
		edge.x++
	}
	edge.e = e - dy
	return y + yi
}

// step moves the edge down by one scanline.
func (edge *polyEdge) step() {
	edge.x += edge.stepx
	edge.e += edge.dx
	if edge.e > 0 {
		edge.x += edge.signdx
		edge.e -= edge.dy
	}
}

// skip moves the edge down by n scanlines.  This is equivalent to
// calling step n times.
func (edge *polyEdge) skip(n int) {
	if n <= 0 {
		return
	}
	edge.x += n * edge.stepx
	v := edge.e + n*edge.dx
	carry := ceilDiv(v, edge.dy)
	edge.x += carry * edge.signdx
	edge.e = v - carry*edge.dy
}

// buildPoly computes the left and right edges of a convex polygon.
// The vertices are relative to (xi, yi), slopes[i] is the edge from
// vertex i to vertex i+1.  Horizontal edges are skipped.
// The edges are appended to left and right.  The function returns the
// first scanline and the number of scanlines covered.
func buildPoly(vertices []vec.Vec2, slopes []polySlope, xi, yi int, left, right []polyEdge) (l, r []polyEdge, top, height int) {
	count := len(vertices)
	l, r = left[:0], right[:0]
	if count < 3 {
		return l, r, 0, 0
	}

	iTop, iBottom := 0, 0
	minY, maxY := vertices[0].Y, vertices[0].Y
	for i := 1; i < count; i++ {
		if vertices[i].Y < minY {
			iTop = i
			minY = vertices[i].Y
		}
		if vertices[i].Y >= maxY {
			iBottom = i
			maxY = vertices[i].Y
		}
	}

	clockwise := 1
	slopeOff := 0
	i := iTop
	j := stepAround(iTop, -1, count)
	if slopes[j].dy*slopes[i].dx > slopes[i].dy*slopes[j].dx {
		clockwise = -1
		slopeOff = -1
	}

	bottomY := int(math.Ceil(maxY)) + yi

	var lastY, topY int
	s := stepAround(iTop, slopeOff, count)
	for i := iTop; i != iBottom; {
		if slopes[s].dy != 0 {
			r = append(r, polyEdge{})
			y := buildEdge(vertices[i].Y, slopes[s].k, slopes[s].dx, slopes[s].dy, xi, yi, false, &r[len(r)-1])
			if len(r) > 1 {
				r[len(r)-2].height = y - lastY
			} else {
				topY = y
			}
			lastY = y
		}
		i = stepAround(i, clockwise, count)
		s = stepAround(s, clockwise, count)
	}
	if len(r) > 0 {
		r[len(r)-1].height = bottomY - lastY
	}

	if slopeOff == 0 {
		slopeOff = -1
	} else {
		slopeOff = 0
	}
	s = stepAround(iTop, slopeOff, count)
	for i := iTop; i != iBottom; {
		if slopes[s].dy != 0 {
			l = append(l, polyEdge{})
			y := buildEdge(vertices[i].Y, slopes[s].k, slopes[s].dx, slopes[s].dy, xi, yi, true, &l[len(l)-1])
			if len(l) > 1 {
				l[len(l)-2].height = y - lastY
			}
			lastY = y
		}
		i = stepAround(i, -clockwise, count)
		s = stepAround(s, -clockwise, count)
	}
	if len(l) > 0 {
		l[len(l)-1].height = bottomY - lastY
	}

	return l, r, topY, bottomY - topY
}

func stepAround(i, step, count int) int {
	i += step
	if i < 0 {
		i += count
	} else if i >= count {
		i -= count
	}
	return i
}

// fillPolyHelper walks the left and right edges of a convex polygon in
// lock-step, starting at scanline y, and appends one span per row to out.
// Rows outside [yClip0, yClip1) are skipped without emitting spans.
// The edges are consumed.
func fillPolyHelper(out SpanList, y int, left, right []polyEdge, yClip0, yClip1 int) SpanList {
	var lh, rh int
	var le, re *polyEdge
	for (len(left) > 0 || lh > 0) && (len(right) > 0 || rh > 0) {
		if lh == 0 && len(left) > 0 {
			le = &left[0]
			lh = le.height
			left = left[1:]
		}
		if rh == 0 && len(right) > 0 {
			re = &right[0]
			rh = re.height
			right = right[1:]
		}
		h := min(lh, rh)
		lh -= h
		rh -= h

		if y >= yClip1 {
			return out
		}
		if y < yClip0 && h > 0 {
			n := min(h, yClip0-y)
			le.skip(n)
			re.skip(n)
			y += n
			h -= n
		}
		for ; h > 0; h-- {
			if y < yClip1 && re.x >= le.x {
				out = append(out, Span{Y: y, X: le.x, Width: re.x - le.x + 1})
			}
			y++
			le.step()
			re.step()
		}
	}
	return out
}

// floorDiv returns floor(a/b) for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv returns ceil(a/b) for b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
