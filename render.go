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

// Package scan converts polygons, lines and arcs into horizontal runs of
// pixels and paints them into a pixel buffer.
//
// Coverage is binary: a pixel is painted if its centre is inside the
// shape.  Pixel centres are at integer coordinates.  All drawing calls
// paint every pixel at most once, even for self-intersecting wide or
// dashed lines.  Drawing calls are methods of [Engine], which holds the
// reusable buffers and an optional cache for wide ellipses.
package scan

import (
	"image"

	"seehuhn.de/go/scan/testcases"
)

// Pixel values used by [RenderCase].
const (
	SceneBackground Pixel = 0
	SceneForeground Pixel = 1
	SceneGap        Pixel = 2 // the gaps of double-dashed lines
)

// RenderCase draws a scene into dst, which should be cleared to
// [SceneBackground] first.
func RenderCase(e *Engine, dst Drawable, tc testcases.TestCase) {
	gc := NewGC()
	gc.Foreground = SceneForeground
	gc.Background = SceneGap

	switch op := tc.Op.(type) {
	case testcases.Fill:
		if op.Rule == testcases.NonZero {
			gc.FillRule = Winding
		}
		if op.Chord {
			gc.ArcMode = ArcChord
		}
		fillShape(e, dst, gc, tc.Shape)

	case testcases.Stroke:
		gc.LineWidth = op.Width
		gc.Cap = CapFromPDF(op.Cap)
		gc.Join = JoinFromPDF(op.Join)
		if op.MiterLimit >= 1 {
			gc.MiterLimit = op.MiterLimit
		}
		if len(op.Dash) > 0 {
			gc.Dash = op.Dash
			gc.DashOffset = op.DashOffset
			gc.LineStyle = LineOnOffDash
			if op.Double {
				gc.LineStyle = LineDoubleDash
			}
		}
		strokeShape(e, dst, gc, tc.Shape)
	}
}

func fillShape(e *Engine, dst Drawable, gc *GC, s testcases.Shape) {
	switch s := s.(type) {
	case testcases.Polygon:
		shape := Complex
		if s.Convex {
			shape = Convex
		}
		e.FillPolygon(dst, gc, shape, CoordModeOrigin, s.Points)
	case testcases.Polyline:
		e.FillPolygon(dst, gc, Complex, CoordModeOrigin, s.Points)
	case testcases.Arcs:
		e.FillArcs(dst, gc, sceneArcs(s))
	case testcases.Curve:
		e.FillPath(dst, gc, s.Data, s.CTM)
	}
}

func strokeShape(e *Engine, dst Drawable, gc *GC, s testcases.Shape) {
	switch s := s.(type) {
	case testcases.Polygon:
		pts := make([]image.Point, 0, len(s.Points)+1)
		pts = append(pts, s.Points...)
		if len(pts) > 0 {
			pts = append(pts, pts[0])
		}
		e.PolyLine(dst, gc, CoordModeOrigin, pts)
	case testcases.Polyline:
		e.PolyLine(dst, gc, CoordModeOrigin, s.Points)
	case testcases.Arcs:
		e.PolyArc(dst, gc, sceneArcs(s))
	case testcases.Curve:
		e.StrokePath(dst, gc, s.Data, s.CTM)
	}
}

func sceneArcs(s testcases.Arcs) []Arc {
	arcs := make([]Arc, len(s))
	for i, a := range s {
		arcs[i] = Arc{
			X: a.X, Y: a.Y,
			Width: a.W, Height: a.H,
			Angle1: a.Angle1, Angle2: a.Angle2,
		}
	}
	return arcs
}
