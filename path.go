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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// flattener converts paths in user space into polylines in device space.
type flattener struct {
	ctm      matrix.Matrix
	flatness float64
}

func newFlattener(ctm matrix.Matrix, flatness float64) flattener {
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	if flatness <= 0 {
		flatness = defaultFlatness
	}
	return flattener{ctm: ctm, flatness: flatness}
}

// apply maps a point from user space to device space.
func (f flattener) apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.ctm[0]*p.X + f.ctm[2]*p.Y + f.ctm[4],
		Y: f.ctm[1]*p.X + f.ctm[3]*p.Y + f.ctm[5],
	}
}

// transformLinear applies only the 2×2 linear part of the CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (f flattener) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.ctm[0]*v.X + f.ctm[2]*v.Y,
		Y: f.ctm[1]*v.X + f.ctm[3]*v.Y,
	}
}

// quadratic calls emit for the points after p0 of a polyline
// approximating the quadratic Bézier curve p0, p1, p2.
func (f flattener) quadratic(p0, p1, p2 vec.Vec2, emit func(vec.Vec2)) {
	// error vector e = (P0 - 2*P1 + P2) / 4, in device space
	e := f.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))

	n := 1
	if errDev := e.Length(); errDev > f.flatness {
		n = int(math.Ceil(math.Sqrt(errDev / f.flatness)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		emit(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// cubic calls emit for the points after p0 of a polyline approximating
// the cubic Bézier curve p0, p1, p2, p3.  The number of points is chosen
// using Wang's formula.
func (f flattener) cubic(p0, p1, p2, p3 vec.Vec2, emit func(vec.Vec2)) {
	d1 := f.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := f.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * f.flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		emit(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
}

// flattenPath converts p into device-space polylines with vertices
// rounded to the nearest pixel.  The vertices of all subpaths are stored
// in e.pathPts, and e.pathEnds holds the end index of each subpath.
// Closed subpaths end with a copy of their first point.
func (e *Engine) flattenPath(p *path.Data, ctm matrix.Matrix) {
	f := newFlattener(ctm, e.Flatness)
	e.pathPts = e.pathPts[:0]
	e.pathEnds = e.pathEnds[:0]

	start := 0
	emit := func(q vec.Vec2) {
		d := f.apply(q)
		pt := image.Point{X: int(math.Floor(d.X + 0.5)), Y: int(math.Floor(d.Y + 0.5))}
		if len(e.pathPts) > start && e.pathPts[len(e.pathPts)-1] == pt {
			return
		}
		e.pathPts = append(e.pathPts, pt)
	}
	// drawn is set once the current subpath has a drawing command;
	// subpaths consisting of a lone MoveTo are dropped.
	drawn := false
	endSubpath := func() {
		if drawn && len(e.pathPts) > start {
			e.pathEnds = append(e.pathEnds, len(e.pathPts))
		} else {
			e.pathPts = e.pathPts[:start]
		}
		start = len(e.pathPts)
		drawn = false
	}

	var current, subpath vec.Vec2
	reopen := false
	coordIdx := 0
	for _, cmd := range p.Cmds {
		if reopen && cmd != path.CmdMoveTo && cmd != path.CmdClose {
			// drawing after a close continues from the subpath start
			emit(current)
			reopen = false
		}
		switch cmd {
		case path.CmdMoveTo:
			endSubpath()
			reopen = false
			current = p.Coords[coordIdx]
			subpath = current
			emit(current)
			coordIdx++

		case path.CmdLineTo:
			drawn = true
			current = p.Coords[coordIdx]
			emit(current)
			coordIdx++

		case path.CmdQuadTo:
			drawn = true
			f.quadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], emit)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			drawn = true
			f.cubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], emit)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if n := len(e.pathPts); n > start+1 && e.pathPts[n-1] != e.pathPts[start] {
				e.pathPts = append(e.pathPts, e.pathPts[start])
			}
			endSubpath()
			current = subpath
			reopen = true
		}
	}
	endSubpath()
}

// subpaths returns the flattened subpaths stored by flattenPath.
func (e *Engine) subpaths() [][]image.Point {
	e.contours = e.contours[:0]
	start := 0
	for _, end := range e.pathEnds {
		e.contours = append(e.contours, e.pathPts[start:end])
		start = end
	}
	return e.contours
}

// PathBounds returns the device space bounding box of the control points
// of p.  The zero matrix is treated as the identity.
func PathBounds(p *path.Data, ctm matrix.Matrix) rect.Rect {
	f := newFlattener(ctm, defaultFlatness)
	var r rect.Rect
	for i, c := range p.Coords {
		d := f.apply(c)
		if i == 0 {
			r = rect.Rect{LLx: d.X, LLy: d.Y, URx: d.X, URy: d.Y}
			continue
		}
		r.LLx = min(r.LLx, d.X)
		r.LLy = min(r.LLy, d.Y)
		r.URx = max(r.URx, d.X)
		r.URy = max(r.URy, d.Y)
	}
	return r
}

// outside reports whether the box r, enlarged by margin pixels, misses
// the drawable.
func outside(dst Drawable, r rect.Rect, margin float64) bool {
	w, h := dst.Size()
	return r.URx+margin < -0.5 || r.URy+margin < -0.5 ||
		r.LLx-margin >= float64(w) || r.LLy-margin >= float64(h)
}

// FillPath fills a path given in user space.  The path is transformed by
// ctm, curves are flattened with tolerance e.Flatness, and the vertices
// are rounded to the nearest pixel.  All subpaths are filled together
// using gc.FillRule.
func (e *Engine) FillPath(dst Drawable, gc *GC, p *path.Data, ctm matrix.Matrix) {
	if len(p.Coords) == 0 || outside(dst, PathBounds(p, ctm), 0) {
		return
	}
	e.flattenPath(p, ctm)
	e.fillContours(dst, gc, e.subpaths(), gc.FillRule)
}

// StrokePath strokes a path given in user space.  The path is flattened
// like in [Engine.FillPath] and every subpath is drawn as a polyline with
// the line settings of gc.  Closed subpaths are joined at the seam.  The
// dash pattern restarts for every subpath.
func (e *Engine) StrokePath(dst Drawable, gc *GC, p *path.Data, ctm matrix.Matrix) {
	margin := float64(gc.LineWidth)*0.5*math.Max(1, gc.MiterLimit) + 1
	if len(p.Coords) == 0 || outside(dst, PathBounds(p, ctm), margin) {
		return
	}
	e.flattenPath(p, ctm)
	subpaths := e.subpaths()

	if gc.LineWidth <= 0 {
		e.dashBuf = normalizeDash(e.dashBuf, gc.Dash)
		e.zero.begin(dst, gc, e.dashBuf)
		for _, sp := range subpaths {
			if e.zero.dashed {
				e.zero.dash.reset(e.dashBuf, gc.DashOffset)
			}
			e.zero.polyline(sp, gc.Cap != CapNotLast && !isClosed(sp))
		}
		e.zero.commit(dst, gc)
		return
	}

	e.beginStroke(dst, gc)
	for _, sp := range subpaths {
		e.strokePolyline(gc, sp)
	}
	e.commitStroke(dst, gc)
}
