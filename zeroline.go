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

import "image"

// Octant bits for the tie-breaking bias of zero-width lines.  The octant
// code of a line is (xdec<<2)|(ydec<<1)|ymajor.
const (
	octant1 = 1 << 2
	octant2 = 1 << 3
	octant3 = 1 << 7
	octant4 = 1 << 6
	octant5 = 1 << 4
	octant6 = 1 << 5
	octant7 = 1 << 1
	octant8 = 1 << 0

	// defaultZeroLineBias selects the octants in which exact ties between
	// two pixels are resolved towards the smaller minor coordinate.
	defaultZeroLineBias = octant2 | octant3 | octant4 | octant5
)

// Outcode bits for the trivial accept and reject tests.
const (
	outLeft = 1 << iota
	outRight
	outAbove
	outBelow
)

func outcode(x, y, w, h int) int {
	code := 0
	if x < 0 {
		code |= outLeft
	} else if x >= w {
		code |= outRight
	}
	if y < 0 {
		code |= outAbove
	} else if y >= h {
		code |= outBelow
	}
	return code
}

// runBuilder collects single pixels into horizontal spans.  Pixels which
// extend the current run on the same row are merged.
type runBuilder struct {
	list   SpanList
	y      int
	x0, x1 int // current run is [x0, x1)
	open   bool
}

func (b *runBuilder) reset() {
	b.list = b.list[:0]
	b.open = false
}

func (b *runBuilder) plot(x, y int) {
	if b.open && y == b.y {
		switch x {
		case b.x1:
			b.x1++
			return
		case b.x0 - 1:
			b.x0--
			return
		}
	}
	b.flush()
	b.y, b.x0, b.x1 = y, x, x+1
	b.open = true
}

func (b *runBuilder) flush() {
	if b.open {
		b.list = b.list.addRange(b.y, b.x0, b.x1)
		b.open = false
	}
}

// zeroRenderer draws zero-width lines with the midpoint algorithm.  All
// segments of one call are collected, and painted at the end with one
// compositor call per phase.
type zeroRenderer struct {
	width, height int

	dashed bool
	double bool
	dash   dashCursor

	fg, bg runBuilder
}

// begin prepares the renderer for a new drawing call.
func (z *zeroRenderer) begin(dst Drawable, gc *GC, pattern []int) {
	z.width, z.height = dst.Size()
	z.dashed = gc.LineStyle != LineSolid
	z.double = gc.LineStyle == LineDoubleDash
	if z.dashed {
		z.dash.reset(pattern, gc.DashOffset)
	}
	z.fg.reset()
	z.bg.reset()
}

// commit paints the collected pixels.  The background dashes are painted
// first, so that the foreground wins where a line crosses itself.
func (z *zeroRenderer) commit(dst Drawable, gc *GC) {
	z.fg.flush()
	z.bg.flush()
	c := newCompositor(dst, gc)
	if len(z.bg.list) > 0 {
		c.paint(z.bg.list, gc.Background, false)
	}
	c.paint(z.fg.list, gc.Foreground, false)
}

// plot draws one pixel at the current dash position.  The caller has
// already clipped the pixel to the drawable.
func (z *zeroRenderer) plot(x, y int) {
	switch {
	case !z.dashed || z.dash.on():
		z.fg.plot(x, y)
	case z.double:
		z.bg.plot(x, y)
	}
}

// polyline draws the segments between consecutive points.  Each segment
// includes its start point and excludes its end point.  If last is true,
// the final point is drawn as well.
func (z *zeroRenderer) polyline(pts []image.Point, last bool) {
	for i := 1; i < len(pts); i++ {
		z.segment(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
	}
	if last && len(pts) > 0 {
		p := pts[len(pts)-1]
		if outcode(p.X, p.Y, z.width, z.height) == 0 {
			z.plot(p.X, p.Y)
		}
		if z.dashed {
			z.dash.advance(1)
		}
	}
}

// segment draws the pixels of the half-open segment from (x1, y1) to
// (x2, y2).
func (z *zeroRenderer) segment(x1, y1, x2, y2 int) {
	dx, dy := x2-x1, y2-y1
	if dx == 0 && dy == 0 {
		return
	}

	sx, adx := 1, dx
	if dx < 0 {
		sx, adx = -1, -dx
	}
	sy, ady := 1, dy
	if dy < 0 {
		sy, ady = -1, -dy
	}

	// Work in (major, minor) coordinates.
	ymajor := ady > adx
	major, minor := adx, ady
	a0, b0 := x1, y1
	sa, sb := sx, sy
	la, lb := z.width, z.height
	if ymajor {
		major, minor = ady, adx
		a0, b0 = y1, x1
		sa, sb = sy, sx
		la, lb = z.height, z.width
	}

	code := 0
	if dx < 0 {
		code |= 4
	}
	if dy < 0 {
		code |= 2
	}
	if ymajor {
		code |= 1
	}
	bias := (defaultZeroLineBias >> code) & 1

	e1 := 2 * minor
	e2 := e1 - 2*major
	e0 := e1 - major - bias

	// The pixel after n steps has minor offset m(n).
	m := func(n int) int {
		if minor == 0 {
			return 0
		}
		return floorDiv(e0+(n-1)*e1+2*major, 2*major)
	}
	// firstAtLeast returns the smallest n with m(n) >= t.
	firstAtLeast := func(t int) int {
		if t <= 0 {
			return 0
		}
		if minor == 0 {
			return major
		}
		return 1 + ceilDiv(2*major*(t-1)-e0, e1)
	}

	n0, n1 := 0, major
	c1 := outcode(x1, y1, z.width, z.height)
	c2 := outcode(x2, y2, z.width, z.height)
	switch {
	case c1&c2 != 0:
		n0, n1 = 0, 0
	case c1|c2 != 0:
		// major axis: 0 <= a0 + n*sa < la
		if sa > 0 {
			n0 = max(n0, -a0)
			n1 = min(n1, la-a0)
		} else {
			n0 = max(n0, a0-la+1)
			n1 = min(n1, a0+1)
		}
		// minor axis: 0 <= b0 + m(n)*sb < lb
		var mLo, mHi int
		if sb > 0 {
			mLo, mHi = -b0, lb-1-b0
		} else {
			mLo, mHi = b0-lb+1, b0
		}
		if mHi < 0 {
			n1 = 0
		} else {
			n0 = max(n0, firstAtLeast(mLo))
			n1 = min(n1, firstAtLeast(mHi+1))
		}
	}

	if n0 >= n1 {
		if z.dashed {
			z.dash.advance(float64(major))
		}
		return
	}
	if z.dashed && n0 > 0 {
		z.dash.advance(float64(n0))
	}

	mm := m(n0)
	e := e0 + n0*e1 - 2*major*mm
	a := a0 + n0*sa
	b := b0 + mm*sb
	for n := n0; n < n1; n++ {
		if ymajor {
			z.plot(b, a)
		} else {
			z.plot(a, b)
		}
		if z.dashed {
			z.dash.advance(1)
		}
		if e >= 0 {
			b += sb
			e += e2
		} else {
			e += e1
		}
		a += sa
	}

	if z.dashed && n1 < major {
		z.dash.advance(float64(major - n1))
	}
}

// isClosed reports whether a polyline ends where it starts.  Closed
// polylines are joined at the seam instead of being capped.
func isClosed(pts []image.Point) bool {
	return len(pts) > 2 && pts[0] == pts[len(pts)-1]
}

// zeroPolyLine draws a zero-width polyline.
func (e *Engine) zeroPolyLine(dst Drawable, gc *GC, pts []image.Point) {
	e.dashBuf = normalizeDash(e.dashBuf, gc.Dash)
	e.zero.begin(dst, gc, e.dashBuf)
	e.zero.polyline(pts, gc.Cap != CapNotLast && !isClosed(pts))
	e.zero.commit(dst, gc)
}
