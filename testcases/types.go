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

// Package testcases holds named drawing scenes, shared by the tests, the
// benchmarks and the commands which export and render the scenes.
package testcases

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single drawing scene.
type TestCase struct {
	Name   string    // lowercase a-z and _ only
	Shape  Shape     // the geometry to draw
	Width  int       // canvas width in pixels
	Height int       // canvas height in pixels
	Op     Operation // fill or stroke
}

// Shape is the geometry of a scene.
type Shape interface {
	// Path returns the geometry as a path in device coordinates.  Arcs are
	// approximated by cubic Bézier curves.
	Path() *path.Data
}

// Polygon is a closed polygon with integer vertices.
type Polygon struct {
	Points []image.Point
	Convex bool // the polygon is known to be convex
}

// Path implements the [Shape] interface.
func (p Polygon) Path() *path.Data {
	return polylinePath(p.Points, true)
}

// Polyline is an open polyline with integer vertices.  A polyline whose
// first and last points coincide is closed.
type Polyline struct {
	Points []image.Point
}

// Path implements the [Shape] interface.
func (p Polyline) Path() *path.Data {
	return polylinePath(p.Points, false)
}

// Arc is a piece of the ellipse inscribed in the given rectangle.  The
// angles are in units of 1/64 degree.  Angle2 is the extent of the arc.
type Arc struct {
	X, Y, W, H     int
	Angle1, Angle2 int
}

// Arcs is a list of arcs.
type Arcs []Arc

// Path implements the [Shape] interface.
func (a Arcs) Path() *path.Data {
	p := &path.Data{}
	var last vec.Vec2
	for i, arc := range a {
		last = appendArc(p, arc, i == 0 || arc.start() != last)
	}
	return p
}

// Curve is a path in user space, mapped to device space by CTM.
type Curve struct {
	Data *path.Data
	CTM  matrix.Matrix // zero-value means no transform
}

// Path implements the [Shape] interface.
func (c Curve) Path() *path.Data {
	if c.CTM == (matrix.Matrix{}) || c.CTM == matrix.Identity {
		return c.Data
	}
	p := &path.Data{Cmds: c.Data.Cmds}
	for _, v := range c.Data.Coords {
		p.Coords = append(p.Coords, vec.Vec2{
			X: c.CTM[0]*v.X + c.CTM[2]*v.Y + c.CTM[4],
			Y: c.CTM[1]*v.X + c.CTM[3]*v.Y + c.CTM[5],
		})
	}
	return p
}

// Operation is the drawing operation to apply to the shape.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill specifies a fill operation.
type Fill struct {
	Rule  FillRule
	Chord bool // filled arcs are closed by a chord instead of two radii
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.  Width zero selects thin lines.
type Stroke struct {
	Width      int                    // line width in pixels
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
	Dash       []int                  // dash pattern (nil for solid)
	DashOffset int                    // dash offset
	Double     bool                   // paint the gaps of the dash pattern with the background
}

func (Stroke) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// ip is a helper to create an image.Point.
func ip(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}

func polylinePath(pts []image.Point, closed bool) *path.Data {
	p := &path.Data{}
	for i, q := range pts {
		v := pt(float64(q.X), float64(q.Y))
		if i == 0 {
			p.MoveTo(v)
		} else {
			p.LineTo(v)
		}
	}
	if closed && len(pts) > 0 {
		p.Close()
	}
	return p
}

const (
	// kappa for cubic Bezier approximation of a quarter circle
	kappa = 0.5522847498307936

	angleUnit = math.Pi / (180 * 64)
)

func (a Arc) point(t float64) vec.Vec2 {
	rx, ry := float64(a.W)/2, float64(a.H)/2
	return pt(float64(a.X)+rx+rx*math.Cos(t), float64(a.Y)+ry-ry*math.Sin(t))
}

func (a Arc) start() vec.Vec2 {
	return a.point(float64(a.Angle1) * angleUnit)
}

// appendArc adds cubic Bézier curves approximating the arc to p and
// returns the end point.  Pieces span at most 90 degrees.
func appendArc(p *path.Data, a Arc, move bool) vec.Vec2 {
	rx, ry := float64(a.W)/2, float64(a.H)/2
	ext := max(-360*64, min(360*64, a.Angle2))
	t0 := float64(a.Angle1) * angleUnit
	t1 := float64(a.Angle1+ext) * angleUnit

	n := max(int(math.Ceil(math.Abs(t1-t0)/(math.Pi/2))), 1)
	dt := (t1 - t0) / float64(n)
	k := 4.0 / 3 * math.Tan(dt/4)

	deriv := func(t float64) vec.Vec2 {
		return pt(-rx*math.Sin(t), -ry*math.Cos(t))
	}
	if move {
		p.MoveTo(a.point(t0))
	}
	for i := range n {
		ta := t0 + float64(i)*dt
		tb := ta + dt
		pa, pb := a.point(ta), a.point(tb)
		p.CubeTo(pa.Add(deriv(ta).Mul(k)), pb.Sub(deriv(tb).Mul(k)), pb)
	}
	return a.point(t1)
}
