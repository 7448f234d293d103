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
	"image"

	"seehuhn.de/go/geom/vec"
)

// Engine converts drawing requests into spans and paints them into a
// [Drawable].  Create one instance and reuse it for many calls.
// Internal buffers grow as needed but never shrink, so that drawing does
// not allocate in steady state.
//
// An Engine is not safe for concurrent use.  Several engines may share
// one [ArcSpanCache].
type Engine struct {
	// ArcCache keeps the span tables of wide ellipses between calls.
	// Nil disables caching.
	ArcCache *ArcSpanCache

	// Flatness controls the accuracy of curve approximation in
	// [Engine.FillPath] and [Engine.StrokePath], in device pixels.
	// Typical values: 0.25-1.0.  Must be positive.
	Flatness float64

	// polygons
	pts      []image.Point
	contours [][]image.Point
	verts    []vec.Vec2
	slopes   []polySlope
	left     []polyEdge
	right    []polyEdge
	edges    []tableEdge
	active   []int // indices into edges, sorted by x
	wind     []int // winding chain, indices into edges
	spans    SpanList

	// lines
	dashBuf []int
	zero    zeroRenderer

	// wide strokes
	shapes               strokeShapes
	fg, bg               SpanGroup
	fgOut, bgOut         strokeOutput
	fgMachine, bgMachine strokeMachine
	dashed, double       bool
	hw                   float64
	dash                 dashCursor
	wpts                 []image.Point

	// arcs and paths
	arcPts   []image.Point
	pathPts  []image.Point
	pathEnds []int
}

// Engine defaults.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit is the miter limit used when the GC does not
	// provide a valid one.  This value cuts off miters at angles below
	// 11 degrees.
	defaultMiterLimit = 10.43
)

// NewEngine returns an engine with default settings and a fresh
// [ArcSpanCache] of [DefaultArcCacheSize] entries.
func NewEngine() *Engine {
	return &Engine{
		ArcCache: NewArcSpanCache(DefaultArcCacheSize),
		Flatness: defaultFlatness,
	}
}

// Reset discards the contents of the internal buffers, keeping their
// capacity.  The arc cache and the exported settings are not changed.
func (e *Engine) Reset() {
	e.pts = e.pts[:0]
	clear(e.contours)
	e.contours = e.contours[:0]
	e.verts = e.verts[:0]
	e.slopes = e.slopes[:0]
	e.left = e.left[:0]
	e.right = e.right[:0]
	e.edges = e.edges[:0]
	e.active = e.active[:0]
	e.wind = e.wind[:0]
	e.spans = e.spans[:0]
	e.dashBuf = e.dashBuf[:0]
	e.zero.fg.reset()
	e.zero.bg.reset()
	e.fg.Reset()
	e.bg.Reset()
	e.wpts = e.wpts[:0]
	e.arcPts = e.arcPts[:0]
	e.pathPts = e.pathPts[:0]
	e.pathEnds = e.pathEnds[:0]
}

// PolyLine draws the lines connecting consecutive points.  If the first
// and last point coincide, the polyline is closed and the seam is joined.
//
// A line width of zero selects thin lines.  Every segment includes its
// start point and excludes its end point, so that consecutive segments do
// not share pixels; where the polyline crosses itself, pixels may be
// painted more than once.  Wider lines are drawn with caps and joins from
// gc, and each pixel is painted at most once.
func (e *Engine) PolyLine(dst Drawable, gc *GC, mode CoordMode, pts []image.Point) {
	if len(pts) == 0 {
		return
	}
	pts = e.absolutePoints(mode, pts)
	if gc.LineWidth <= 0 {
		e.zeroPolyLine(dst, gc, pts)
		return
	}
	e.beginStroke(dst, gc)
	e.strokePolyline(gc, pts)
	e.commitStroke(dst, gc)
}

// Segment is a line segment for [Engine.PolySegment].
type Segment struct {
	P0, P1 image.Point
}

// PolySegment draws unconnected line segments.  Every segment gets caps
// at both ends, and the dash pattern restarts for each segment.  All
// segments of one call are painted together, so that pixels shared by
// several wide segments are painted once.
func (e *Engine) PolySegment(dst Drawable, gc *GC, segs []Segment) {
	if len(segs) == 0 {
		return
	}
	if gc.LineWidth <= 0 {
		e.dashBuf = normalizeDash(e.dashBuf, gc.Dash)
		e.zero.begin(dst, gc, e.dashBuf)
		last := gc.Cap != CapNotLast
		for _, s := range segs {
			if e.zero.dashed {
				e.zero.dash.reset(e.dashBuf, gc.DashOffset)
			}
			e.pts = append(e.pts[:0], s.P0, s.P1)
			e.zero.polyline(e.pts, last)
		}
		e.zero.commit(dst, gc)
		return
	}

	e.beginStroke(dst, gc)
	for _, s := range segs {
		e.pts = append(e.pts[:0], s.P0, s.P1)
		e.strokePolyline(gc, e.pts)
	}
	e.commitStroke(dst, gc)
}

// PolyRectangle draws the outlines of rectangles.  The outline runs
// through the corners r.Min and r.Max, so that a zero-width outline of
// image.Rect(x, y, x+w, y+h) covers (w+1)*(h+1) pixels minus the
// interior.  Corners are joined using gc.Join.
func (e *Engine) PolyRectangle(dst Drawable, gc *GC, rects []image.Rectangle) {
	if len(rects) == 0 {
		return
	}
	wide := gc.LineWidth > 0
	if wide {
		e.beginStroke(dst, gc)
	} else {
		e.dashBuf = normalizeDash(e.dashBuf, gc.Dash)
		e.zero.begin(dst, gc, e.dashBuf)
	}
	for _, r := range rects {
		r = r.Canon()
		e.pts = append(e.pts[:0],
			r.Min,
			image.Point{X: r.Max.X, Y: r.Min.Y},
			r.Max,
			image.Point{X: r.Min.X, Y: r.Max.Y},
			r.Min,
		)
		if wide {
			e.strokePolyline(gc, e.pts)
		} else {
			if e.zero.dashed {
				e.zero.dash.reset(e.dashBuf, gc.DashOffset)
			}
			e.zero.polyline(e.pts, false)
		}
	}
	if wide {
		e.commitStroke(dst, gc)
	} else {
		e.zero.commit(dst, gc)
	}
}
