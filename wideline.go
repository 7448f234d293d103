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
)

// beginStroke prepares the span groups and stroke machines for one
// drawing call with a wide line.
func (e *Engine) beginStroke(dst Drawable, gc *GC) {
	_, h := dst.Size()
	e.shapes.clipY0 = 0
	e.shapes.clipY1 = h

	e.fg.Reset()
	e.bg.Reset()

	e.dashed = gc.LineStyle != LineSolid
	e.double = gc.LineStyle == LineDoubleDash
	e.hw = float64(max(gc.LineWidth, 1)) / 2

	miterLimit := gc.MiterLimit
	if miterLimit < 1 {
		miterLimit = defaultMiterLimit
	}
	e.fgOut = strokeOutput{
		shapes:     &e.shapes,
		group:      &e.fg,
		cap:        gc.Cap,
		join:       gc.Join,
		miterLimit: miterLimit,
		spans:      e.fgOut.spans,
	}
	if e.double {
		e.fgOut.subtract = &e.bg
	}
	e.bgOut = e.fgOut
	e.bgOut.group = &e.bg
	e.bgOut.subtract = nil
	e.fgMachine.reset(&e.fgOut)
	e.bgMachine.reset(&e.bgOut)

	if e.dashed {
		e.dashBuf = normalizeDash(e.dashBuf, gc.Dash)
	}
}

// commitStroke paints the collected spans.  Each group is painted with a
// single compositor call.  Pixels covered by both phases of a double
// dashed line are painted in the foreground only.
func (e *Engine) commitStroke(dst Drawable, gc *GC) {
	if e.double && !e.bg.Empty() {
		_, h := dst.Size()
		e.bg.subtract(e.fg.merge(0, h-1))
		e.bg.PaintUnique(dst, gc, gc.Background)
	}
	e.fg.PaintUnique(dst, gc, gc.Foreground)
}

// phase returns the machine and output for the current dash, or nil if
// the current dash is not drawn.
func (e *Engine) phase() (*strokeMachine, *strokeOutput) {
	switch {
	case !e.dashed || e.dash.on():
		return &e.fgMachine, &e.fgOut
	case e.double:
		return &e.bgMachine, &e.bgOut
	}
	return nil, nil
}

// strokePolyline adds one wide polyline to the span groups.  The dash
// pattern restarts at the dash offset.
func (e *Engine) strokePolyline(gc *GC, pts []image.Point) {
	e.wpts = e.wpts[:0]
	for _, p := range pts {
		if len(e.wpts) == 0 || p != e.wpts[len(e.wpts)-1] {
			e.wpts = append(e.wpts, p)
		}
	}
	pts = e.wpts
	if len(pts) == 0 {
		return
	}
	if e.dashed {
		e.dash.reset(e.dashBuf, gc.DashOffset)
	}
	e.fgMachine.reset(&e.fgOut)
	e.bgMachine.reset(&e.bgOut)

	if len(pts) == 1 {
		if _, o := e.phase(); o != nil {
			o.spans = e.shapes.dotSpans(o.spans[:0], pts[0], e.hw, gc.Cap)
			o.group.Append(o.spans, o.subtract)
		}
		return
	}

	closed := isClosed(pts)
	if e.dashed {
		e.dashedPolyline(pts, closed)
	} else {
		e.solidPolyline(pts, closed)
	}
}

func (e *Engine) solidPolyline(pts []image.Point, closed bool) {
	m := &e.fgMachine
	var prev face
	for i := 1; i < len(pts); i++ {
		p, q := pts[i-1], pts[i]
		dx, dy := q.X-p.X, q.Y-p.Y
		a := segmentFace(p, dx, dy, 0, e.hw, true)
		b := segmentFace(q, dx, dy, 0, e.hw, false)
		if i == 1 {
			m.start(a, true, closed)
		} else {
			m.vertex(prev, a)
		}
		e.fgOut.emitBody(a, b)
		prev = b
	}
	m.finish(prev, closed)
}

// dashedPolyline walks the polyline with the dash cursor.  Dash lengths
// are measured along the polyline.  A dash which reaches a vertex
// continues on the next segment, with a join at the vertex.
func (e *Engine) dashedPolyline(pts []image.Point, closed bool) {
	var prev face
	for i := 1; i < len(pts); i++ {
		p, q := pts[i-1], pts[i]
		dx, dy := q.X-p.X, q.Y-p.Y
		l := math.Hypot(float64(dx), float64(dy))
		last := i == len(pts)-1

		if i > 1 {
			a := segmentFace(p, dx, dy, 0, e.hw, true)
			e.fgMachine.vertex(prev, a)
			e.bgMachine.vertex(prev, a)
		}

		for t := 0.0; t < l; {
			m, o := e.phase()
			rem := e.dash.remaining()
			t1 := min(l, t+rem)

			var b face
			if m != nil {
				a := segmentFace(p, dx, dy, t, e.hw, true)
				if !m.open {
					m.start(a, i == 1 && t == 0, closed)
				}
				if t1 == l {
					b = segmentFace(q, dx, dy, 0, e.hw, false)
				} else {
					b = segmentFace(p, dx, dy, t1, e.hw, false)
				}
				o.emitBody(a, b)
			}

			if t+rem <= l {
				if m != nil && !(last && t+rem == l) {
					m.stop(b)
				}
				e.dash.next()
			} else {
				e.dash.advance(l - t)
			}
			t = t1
		}
		prev = segmentFace(q, dx, dy, 0, e.hw, false)
	}
	e.fgMachine.finish(prev, closed)
	if e.double {
		e.bgMachine.finish(prev, closed)
	}
}
