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

	"seehuhn.de/go/geom/vec"
)

// face is one end of a piece of a wide stroke.  Caps are attached to
// faces, and joins connect the end face of one piece to the start face of
// the next.
//
// All coordinates are relative to origin.  The three lines of a face are
// stored with exact integer directions where possible, so that the
// polygons of bodies, caps and joins which share an edge meet without
// gaps.
type face struct {
	origin image.Point
	pos    vec.Vec2 // centre of the face
	out    vec.Vec2 // unit vector pointing away from the stroke
	n      vec.Vec2 // half-width offset, out rotated by 90 degrees
	hw     float64

	across      polySlope // the face line, through pos
	plus, minus polySlope // the stroke sides, through pos+n and pos-n
}

// segmentFace returns a face of the straight segment with integer
// direction (dx, dy) through origin.  The face is at distance t from
// origin, in direction (dx, dy).  If start is true, the face points
// backwards, otherwise it points forward.
func segmentFace(origin image.Point, dx, dy int, t, hw float64, start bool) face {
	l := math.Hypot(float64(dx), float64(dy))
	u := vec.Vec2{X: float64(dx) / l, Y: float64(dy) / l}

	f := face{
		origin: origin,
		pos:    u.Mul(t),
		out:    u,
		hw:     hw,
	}
	// The side lines are x*dy - y*dx = -/+ hw*l, the face line is
	// x*dx + y*dy = t*l.
	across := polySlope{dx: -dy, dy: dx, k: t * l}
	left := polySlope{dx: dx, dy: dy, k: -hw * l}
	right := polySlope{dx: dx, dy: dy, k: hw * l}
	if start {
		f.out = u.Mul(-1)
		left, right = right, left
	}
	f.n = vec.Vec2{X: -f.out.Y * hw, Y: f.out.X * hw}
	f.across = across
	f.plus = left
	f.minus = right
	return f
}

// curveFace returns a face at an arbitrary point, for example at the end
// of an arc.  The integer directions of the face lines are scaled and
// rounded.
func curveFace(origin image.Point, pos, out vec.Vec2, hw float64) face {
	out = out.Mul(1 / out.Length())
	f := face{
		origin: origin,
		pos:    pos,
		out:    out,
		n:      vec.Vec2{X: -out.Y * hw, Y: out.X * hw},
		hw:     hw,
	}
	sdx := int(math.Round(out.X * slopeScale))
	sdy := int(math.Round(out.Y * slopeScale))
	f.across = slopeThrough(pos, -sdy, sdx)
	f.plus = slopeThrough(pos.Add(f.n), sdx, sdy)
	f.minus = slopeThrough(pos.Sub(f.n), sdx, sdy)
	return f
}

// moveTo returns the face with coordinates relative to a new origin.
func (f face) moveTo(origin image.Point) face {
	if origin == f.origin {
		return f
	}
	ox, oy := origin.X-f.origin.X, origin.Y-f.origin.Y
	d := vec.Vec2{X: float64(ox), Y: float64(oy)}
	f.origin = origin
	f.pos = f.pos.Sub(d)
	f.across = f.across.shift(ox, oy)
	f.plus = f.plus.shift(ox, oy)
	f.minus = f.minus.shift(ox, oy)
	return f
}

// shift returns the same line in coordinates relative to (ox, oy).
func (s polySlope) shift(ox, oy int) polySlope {
	s.k -= float64(ox)*float64(s.dy) - float64(oy)*float64(s.dx)
	return s
}

// through returns the line parallel to s through p.
func (s polySlope) through(p vec.Vec2) polySlope {
	return slopeThrough(p, s.dx, s.dy)
}

// orient returns s with its direction pointing from a towards b.
func orient(s polySlope, a, b vec.Vec2) polySlope {
	if (b.X-a.X)*float64(s.dx)+(b.Y-a.Y)*float64(s.dy) < 0 {
		s.dx, s.dy, s.k = -s.dx, -s.dy, -s.k
	}
	return s
}

// strokeShapes computes the spans of the pieces of a wide stroke: bodies,
// caps and joins.  It holds the scratch space for the polygon code.
type strokeShapes struct {
	clipY0, clipY1 int

	verts  []vec.Vec2
	slopes []polySlope
	left   []polyEdge
	right  []polyEdge
	planes []vec.Vec2
}

// convex appends the spans of the convex polygon given by s.verts and
// s.slopes.  The slope directions are oriented along the polygon first.
func (s *strokeShapes) convex(out SpanList, origin image.Point) SpanList {
	n := len(s.verts)
	for i := range s.slopes {
		s.slopes[i] = orient(s.slopes[i], s.verts[i], s.verts[(i+1)%n])
	}
	var top int
	s.left, s.right, top, _ = buildPoly(s.verts, s.slopes, origin.X, origin.Y, s.left, s.right)
	return fillPolyHelper(out, top, s.left, s.right, s.clipY0, s.clipY1)
}

// body appends the spans of the stroke body between faces a and b of one
// straight segment.  The start face a points backwards, the end face b
// points forward.
func (s *strokeShapes) body(out SpanList, a, b face) SpanList {
	b = b.moveTo(a.origin)
	// a points backwards, so a.plus is the same line as b.minus
	s.verts = append(s.verts[:0],
		a.pos.Sub(a.n),
		b.pos.Add(b.n),
		b.pos.Sub(b.n),
		a.pos.Add(a.n),
	)
	s.slopes = append(s.slopes[:0], a.minus, b.across, b.minus, a.across)
	return s.convex(out, a.origin)
}

// capSpans appends the spans of the cap at face f.
func (s *strokeShapes) capSpans(out SpanList, f face, style CapStyle) SpanList {
	switch style {
	case CapProjecting:
		ext := f.out.Mul(f.hw)
		s.verts = append(s.verts[:0],
			f.pos.Add(f.n),
			f.pos.Add(f.n).Add(ext),
			f.pos.Sub(f.n).Add(ext),
			f.pos.Sub(f.n),
		)
		s.slopes = append(s.slopes[:0], f.plus, f.across.through(f.pos.Add(ext)), f.minus, f.across)
		return s.convex(out, f.origin)

	case CapTriangular:
		tip := f.pos.Add(f.out.Mul(f.hw))
		s.verts = append(s.verts[:0], f.pos.Add(f.n), tip, f.pos.Sub(f.n))
		s.slopes = append(s.slopes[:0],
			slopeBetween(s.verts[0], s.verts[1]),
			slopeBetween(s.verts[1], s.verts[2]),
			f.across)
		return s.convex(out, f.origin)

	case CapRound:
		s.planes = append(s.planes[:0], f.out)
		c := f.pos.Add(vec.Vec2{X: float64(f.origin.X), Y: float64(f.origin.Y)})
		return diskSpans(out, c, f.hw, s.planes, s.clipY0, s.clipY1)
	}
	return out
}

// joinSpans appends the spans which fill the gap between the end face a
// of one piece and the start face b of the next.  The result of a miter
// join which is longer than miterLimit times the half width is a bevel.
func (s *strokeShapes) joinSpans(out SpanList, a, b face, style JoinStyle, miterLimit float64) SpanList {
	a = a.moveTo(b.origin)
	p := b.pos

	// a.out is the direction of the first piece, -b.out that of the second
	cross := -(a.out.X*b.out.Y - a.out.Y*b.out.X)
	dot := -(a.out.X*b.out.X + a.out.Y*b.out.Y)
	if math.Abs(cross) < 1e-12 && dot > 0 {
		return out
	}

	// select the outer side of the corner
	o1, side1 := a.n, a.plus
	o2, side2 := b.n.Mul(-1), b.minus
	if cross > 0 {
		o1, side1 = a.n.Mul(-1), a.minus
		o2, side2 = b.n, b.plus
	}

	if style == JoinRound {
		s.planes = append(s.planes[:0], a.out, b.out)
		c := p.Add(vec.Vec2{X: float64(b.origin.X), Y: float64(b.origin.Y)})
		return diskSpans(out, c, b.hw, s.planes, s.clipY0, s.clipY1)
	}

	mid := o1.Add(o2)
	midLen := mid.Length()
	if style == JoinMiter && midLen > 1e-9 {
		m := mid.Mul(1 / midLen)
		cosHalf := o1.Dot(m) / b.hw
		if cosHalf > 0 && 1/cosHalf <= miterLimit {
			tip := p.Add(m.Mul(b.hw / cosHalf))
			s.verts = append(s.verts[:0], p, p.Add(o1), tip, p.Add(o2))
			s.slopes = append(s.slopes[:0], a.across, side1, side2, b.across)
			return s.convex(out, b.origin)
		}
		Logger().Debug("miter limit exceeded, using bevel",
			"x", b.origin.X, "y", b.origin.Y)
	}

	if style == JoinTriangular && midLen > 1e-9 {
		tip := p.Add(mid.Mul(b.hw / midLen))
		s.verts = append(s.verts[:0], p, p.Add(o1), tip, p.Add(o2))
		s.slopes = append(s.slopes[:0],
			a.across,
			slopeBetween(s.verts[1], s.verts[2]),
			slopeBetween(s.verts[2], s.verts[3]),
			b.across)
		return s.convex(out, b.origin)
	}

	// bevel
	s.verts = append(s.verts[:0], p, p.Add(o1), p.Add(o2))
	s.slopes = append(s.slopes[:0], a.across, slopeBetween(s.verts[1], s.verts[2]), b.across)
	return s.convex(out, b.origin)
}

// dotSpans appends the spans for a stroke of zero length at c.  Round
// caps give a disk, projecting caps a square, other caps nothing.
func (s *strokeShapes) dotSpans(out SpanList, c image.Point, hw float64, style CapStyle) SpanList {
	switch style {
	case CapRound:
		center := vec.Vec2{X: float64(c.X), Y: float64(c.Y)}
		return diskSpans(out, center, hw, nil, s.clipY0, s.clipY1)
	case CapProjecting:
		y0 := max(int(math.Ceil(float64(c.Y)-hw)), s.clipY0)
		y1 := min(int(math.Ceil(float64(c.Y)+hw)), s.clipY1)
		x0 := int(math.Ceil(float64(c.X) - hw))
		x1 := int(math.Ceil(float64(c.X) + hw))
		for y := y0; y < y1; y++ {
			out = out.addRange(y, x0, x1)
		}
	}
	return out
}

// diskEps absorbs rounding errors at the straight boundaries of clipped
// disks.
const diskEps = 1e-9

// diskSpans appends the spans of the disk with centre c and radius r,
// restricted to the points p with (p-c)·n >= 0 for every n in planes.
// Pixel centres on the circle are inside at the left and top, outside at
// the right and bottom.
func diskSpans(out SpanList, c vec.Vec2, r float64, planes []vec.Vec2, yClip0, yClip1 int) SpanList {
	y0 := max(int(math.Ceil(c.Y-r)), yClip0)
	y1 := min(int(math.Ceil(c.Y+r)), yClip1)
	for y := y0; y < y1; y++ {
		vy := float64(y) - c.Y
		d := r*r - vy*vy
		if d < 0 {
			continue
		}
		half := math.Sqrt(d)
		x0 := int(math.Ceil(c.X - half))
		x1 := int(math.Ceil(c.X + half))

		for _, n := range planes {
			// n.X*(x-c.X) + n.Y*vy >= 0
			switch {
			case n.X > diskEps:
				b := c.X - n.Y*vy/n.X
				x0 = max(x0, int(math.Ceil(b-diskEps)))
			case n.X < -diskEps:
				b := c.X - n.Y*vy/n.X
				x1 = min(x1, int(math.Floor(b+diskEps))+1)
			default:
				if n.Y*vy < -diskEps {
					x1 = x0
				}
			}
		}
		out = out.addRange(y, x0, x1)
	}
	return out
}
