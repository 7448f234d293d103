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
	"cmp"
	"image"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Shape is a hint about the form of a polygon.
type Shape int

// These are the supported shape hints.
const (
	// Complex polygons may intersect themselves.
	Complex Shape = iota

	// Nonconvex polygons do not intersect themselves.
	Nonconvex

	// Convex polygons allow a faster algorithm.  The result is undefined
	// if the polygon is not actually convex.
	Convex
)

// CoordMode tells how the points of a polygon or polyline are given.
type CoordMode int

// These are the supported coordinate modes.
const (
	CoordModeOrigin   CoordMode = iota // all points are absolute
	CoordModePrevious                  // points after the first are relative to their predecessor
)

// absolutePoints returns pts with relative coordinates resolved.  For
// CoordModeOrigin, pts is returned unchanged.
func (e *Engine) absolutePoints(mode CoordMode, pts []image.Point) []image.Point {
	if mode != CoordModePrevious || len(pts) == 0 {
		return pts
	}
	e.pts = append(e.pts[:0], pts[0])
	for _, p := range pts[1:] {
		e.pts = append(e.pts, e.pts[len(e.pts)-1].Add(p))
	}
	return e.pts
}

// FillPolygon fills the interior of a closed polygon, using gc.FillRule to
// decide which parts of a self-intersecting polygon are inside.  The
// polygon is closed automatically.  A pixel is painted if its centre is
// inside the polygon.  Pixel centres on a left or top boundary are
// inside, centres on a right or bottom boundary are outside.
// Polygons with fewer than three points are ignored.
func (e *Engine) FillPolygon(dst Drawable, gc *GC, shape Shape, mode CoordMode, pts []image.Point) {
	if len(pts) < 3 {
		return
	}
	pts = e.absolutePoints(mode, pts)

	if shape == Convex {
		e.fillConvex(dst, gc, pts)
		return
	}
	e.contours = append(e.contours[:0], pts)
	e.fillContours(dst, gc, e.contours, gc.FillRule)
}

// fillConvex walks the left and right chains of a convex polygon in
// lock-step, from the top vertex to the bottom vertex.
func (e *Engine) fillConvex(dst Drawable, gc *GC, pts []image.Point) {
	origin := pts[0]
	e.verts = e.verts[:0]
	for _, p := range pts {
		e.verts = append(e.verts, vec.Vec2{X: float64(p.X - origin.X), Y: float64(p.Y - origin.Y)})
	}
	n := len(pts)
	e.slopes = e.slopes[:0]
	for i, p := range pts {
		q := pts[(i+1)%n]
		e.slopes = append(e.slopes, slopeThrough(e.verts[i], q.X-p.X, q.Y-p.Y))
	}

	var top int
	e.left, e.right, top, _ = buildPoly(e.verts, e.slopes, origin.X, origin.Y, e.left, e.right)
	_, h := dst.Size()
	e.spans = fillPolyHelper(e.spans[:0], top, e.left, e.right, 0, h)
	newCompositor(dst, gc).paint(e.spans, gc.Foreground, true)
}

// tableEdge is an entry of the edge table used for general polygons.
type tableEdge struct {
	polyEdge
	yTop int
	dir  int // +1 for edges going down, -1 for edges going up
}

// fillContours fills the union of several closed contours using the given
// fill rule.  Edges are sorted by their first scanline, active edges are
// kept in x order.
func (e *Engine) fillContours(dst Drawable, gc *GC, contours [][]image.Point, rule FillRule) {
	e.edges = e.edges[:0]
	for _, c := range contours {
		n := len(c)
		if n < 2 {
			continue
		}
		for i, p := range c {
			q := c[(i+1)%n]
			if p.Y == q.Y {
				continue
			}
			dir := 1
			if p.Y > q.Y {
				p, q = q, p
				dir = -1
			}
			dx, dy := q.X-p.X, q.Y-p.Y
			var te tableEdge
			k := float64(p.X)*float64(dy) - float64(p.Y)*float64(dx)
			te.yTop = buildEdge(float64(p.Y), k, dx, dy, 0, 0, true, &te.polyEdge)
			te.height = dy
			te.dir = dir
			e.edges = append(e.edges, te)
		}
	}
	if len(e.edges) == 0 {
		return
	}

	slices.SortFunc(e.edges, func(a, b tableEdge) int {
		return cmp.Compare(a.yTop, b.yTop)
	})

	_, h := dst.Size()
	e.active = e.active[:0]
	e.spans = e.spans[:0]
	nextEdge := 0
	chainValid := false

	y := max(e.edges[0].yTop, 0)
	for ; y < h; y++ {
		// add edges that start at or above this scanline
		for nextEdge < len(e.edges) && e.edges[nextEdge].yTop <= y {
			te := &e.edges[nextEdge]
			if skip := y - te.yTop; skip > 0 {
				te.skip(skip)
				te.height -= skip
			}
			if te.height > 0 {
				e.active = append(e.active, nextEdge)
				chainValid = false
			}
			nextEdge++
		}
		if len(e.active) == 0 {
			if nextEdge >= len(e.edges) {
				break
			}
			y = max(e.edges[nextEdge].yTop, y+1) - 1
			continue
		}

		// keep the active edges sorted by x
		for i := 1; i < len(e.active); i++ {
			for j := i; j > 0 && e.edges[e.active[j]].x < e.edges[e.active[j-1]].x; j-- {
				e.active[j], e.active[j-1] = e.active[j-1], e.active[j]
				chainValid = false
			}
		}

		switch rule {
		case Winding:
			if !chainValid {
				e.buildWindingChain()
				chainValid = true
			}
			for i := 0; i+1 < len(e.wind); i += 2 {
				x0 := e.edges[e.wind[i]].x
				x1 := e.edges[e.wind[i+1]].x
				e.spans = e.spans.addRange(y, x0, x1)
			}
		default:
			for i := 0; i+1 < len(e.active); i += 2 {
				x0 := e.edges[e.active[i]].x
				x1 := e.edges[e.active[i+1]].x
				e.spans = e.spans.addRange(y, x0, x1)
			}
		}

		// step to the next scanline, dropping finished edges
		j := 0
		for _, idx := range e.active {
			te := &e.edges[idx]
			te.height--
			if te.height > 0 {
				te.step()
				e.active[j] = idx
				j++
			} else {
				chainValid = false
			}
		}
		e.active = e.active[:j]
	}

	newCompositor(dst, gc).paint(e.spans, gc.Foreground, true)
}

// buildWindingChain collects the active edges at which the winding number
// changes between zero and non-zero.  Consecutive pairs of the chain
// bound the inside of the polygon.  The chain only depends on the order
// of the active edges, so it is rebuilt only when this order changes.
func (e *Engine) buildWindingChain() {
	e.wind = e.wind[:0]
	w := 0
	for _, idx := range e.active {
		before := w
		w += e.edges[idx].dir
		if (before == 0) != (w == 0) {
			e.wind = append(e.wind, idx)
		}
	}
}

// FillRectangles fills each rectangle.  The rectangles are given as
// half-open pixel ranges, so that image.Rect(x, y, x+w, y+h) covers w*h
// pixels.  Overlapping rectangles paint shared pixels more than once.
func (e *Engine) FillRectangles(dst Drawable, gc *GC, rects []image.Rectangle) {
	_, h := dst.Size()
	c := newCompositor(dst, gc)
	for _, r := range rects {
		r = r.Canon()
		if r.Empty() {
			continue
		}
		y0 := max(r.Min.Y, 0)
		y1 := min(r.Max.Y, h)
		e.spans = e.spans[:0]
		for y := y0; y < y1; y++ {
			e.spans = e.spans.addRange(y, r.Min.X, r.Max.X)
		}
		c.paint(e.spans, gc.Foreground, true)
	}
}
