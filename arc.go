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
	"math/bits"

	"seehuhn.de/go/geom/vec"
)

// FullCircle is the angle of a full turn, in units of 1/64 degree.
const FullCircle = 360 * 64

// Arc is a piece of the ellipse inscribed in the rectangle with top-left
// corner (X, Y), width Width and height Height.
//
// Angles are given in units of 1/64 degree and are measured
// counter-clockwise from the positive x-axis, in the parametric system of
// the ellipse: the point at angle t is (cx + a cos t, cy - b sin t), where
// (cx, cy) is the centre and a, b are the half axes.  The arc starts at
// Angle1 and extends by Angle2.  Negative values of Angle2 go clockwise.
// If |Angle2| is at least [FullCircle], the complete ellipse is used.
type Arc struct {
	X, Y          int
	Width, Height int
	Angle1        int
	Angle2        int
}

// IsFull reports whether the arc covers the complete ellipse.
func (a Arc) IsFull() bool {
	return a.Angle2 >= FullCircle || a.Angle2 <= -FullCircle
}

// Bounds returns the bounding box of the complete ellipse.
func (a Arc) Bounds() image.Rectangle {
	return image.Rect(a.X, a.Y, a.X+a.Width, a.Y+a.Height)
}

// radians returns the start and end angle of the arc, in the direction
// in which the arc is traversed.
func (a Arc) radians() (t0, t1 float64) {
	const scale = math.Pi / (180 * 64)
	ext := a.Angle2
	if a.IsFull() {
		ext = FullCircle
		if a.Angle2 < 0 {
			ext = -FullCircle
		}
	}
	return float64(a.Angle1) * scale, float64(a.Angle1+ext) * scale
}

// ellipseScan finds the pixels of a filled ellipse, one row at a time.
// All arithmetic is done on integers with doubled coordinates, so that
// the centre of the ellipse is at an integer position.  Products are
// compared with 128 bits, so that very large ellipses clipped to a small
// drawable work.
type ellipseScan struct {
	cx2, cy2 int // doubled centre
	w, h     int
	rHi, rLo uint64 // (w*h)^2

	xl, xr int // pixels of the previous row, [xl, xr)
}

func newEllipseScan(arc Arc) *ellipseScan {
	w, h := arc.Width, arc.Height
	wh := uint64(w) * uint64(h)
	rHi, rLo := bits.Mul64(wh, wh)
	return &ellipseScan{
		cx2: 2*arc.X + w,
		cy2: 2*arc.Y + h,
		w:   w,
		h:   h,
		rHi: rHi,
		rLo: rLo,
	}
}

// inside reports whether the centre of pixel (x, y) is inside the
// ellipse.  Centres on the boundary are inside on the left half and
// outside on the right half.
func (s *ellipseScan) inside(x, y int) bool {
	dx := 2*x - s.cx2
	dy := 2*y - s.cy2
	p := uabs(dx) * uint64(s.h)
	q := uabs(dy) * uint64(s.w)
	pHi, pLo := bits.Mul64(p, p)
	qHi, qLo := bits.Mul64(q, q)
	vLo, carry := bits.Add64(pLo, qLo, 0)
	vHi, _ := bits.Add64(pHi, qHi, carry)
	if vHi != s.rHi || vLo != s.rLo {
		return vHi < s.rHi || vHi == s.rHi && vLo < s.rLo
	}
	return dx <= 0
}

func uabs(x int) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// row returns the pixels [x0, x1) of the ellipse on scanline y.  Starting
// from the extent of the previous row, the boundaries are moved one pixel
// at a time, so that scanning all rows takes time proportional to the
// size of the ellipse.
func (s *ellipseScan) row(y int) (x0, x1 int) {
	seed := (s.cx2-s.w)/2 + s.w/2
	if s.xl >= s.xr {
		s.xl, s.xr = seed, seed
	}
	if !s.inside(seed, y) {
		s.xl, s.xr = seed, seed
		return seed, seed
	}
	if s.xl > seed {
		s.xl = seed
	}
	if s.xr <= seed {
		s.xr = seed + 1
	}
	for s.inside(s.xl-1, y) {
		s.xl--
	}
	for !s.inside(s.xl, y) {
		s.xl++
	}
	for s.inside(s.xr, y) {
		s.xr++
	}
	for !s.inside(s.xr-1, y) {
		s.xr--
	}
	return s.xl, s.xr
}

// halfPlane is the set of pixels with px*k*vx + py*k*vy + c >= 0, where
// (vx, vy) is the doubled pixel position relative to the centre of the
// ellipse, with the y-axis pointing up.  All coefficients are integers, so
// the boundary is computed exactly, like the edges of a polygon.
type halfPlane struct {
	px, py, c int
	k         int
}

// span returns the pixels [lo, hi) of row y inside the half-plane.
func (p halfPlane) span(cx2, cy2, y int) (lo, hi int) {
	vy := cy2 - 2*y
	// a*x + b >= 0
	a := 2 * p.k * p.px
	b := p.k*(p.py*vy-p.px*cx2) + p.c
	switch {
	case a > 0:
		return ceilDiv(-b, a), math.MaxInt
	case a < 0:
		return math.MinInt, floorDiv(b, -a) + 1
	case b >= 0:
		return math.MinInt, math.MaxInt
	}
	return 0, 0
}

// sectorClip restricts the rows of a filled ellipse to a pie slice or to
// the segment cut off by a chord.
type sectorClip struct {
	planes []halfPlane
	union  bool // pixels in either half-plane, else in both
}

// rayDirection returns the direction from the centre to the ellipse point
// at angle t, in doubled coordinates with the y-axis pointing up.  The
// direction is scaled and rounded to integers, so that directions along
// the axes are exact.
func rayDirection(arc Arc, t float64) (dx, dy int) {
	m := float64(max(arc.Width, arc.Height))
	dx = int(math.Round(float64(arc.Width) * math.Cos(t) / m * slopeScale))
	dy = int(math.Round(float64(arc.Height) * math.Sin(t) / m * slopeScale))
	return dx, dy
}

// chordScale is the sub-pixel resolution of chord end points.
const chordScale = 16

// exactSincos is like math.Sincos, but values which only differ from zero
// by rounding errors are returned as zero.  Chords through the centre of
// the ellipse are then exactly horizontal or vertical.
func exactSincos(t float64) (sin, cos float64) {
	const eps = 1e-12
	sin, cos = math.Sincos(t)
	if math.Abs(sin) < eps {
		sin = 0
	}
	if math.Abs(cos) < eps {
		cos = 0
	}
	return sin, cos
}

func newSectorClip(arc Arc, mode ArcMode) *sectorClip {
	t0, t1 := arc.radians()
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	c := &sectorClip{}
	switch mode {
	case ArcChord:
		w, h := float64(arc.Width)*chordScale, float64(arc.Height)*chordScale
		s0, c0 := exactSincos(t0)
		s1, c1 := exactSincos(t1)
		e0x, e0y := int(math.Round(w*c0)), int(math.Round(h*s0))
		e1x, e1y := int(math.Round(w*c1)), int(math.Round(h*s1))
		dx, dy := e1x-e0x, e1y-e0y
		// cross((dx, dy), v - e0) <= 0
		p := halfPlane{px: dy, py: -dx, k: chordScale}
		p.c = -(p.px*e0x + p.py*e0y)
		c.planes = append(c.planes, p)
	default:
		d0x, d0y := rayDirection(arc, t0)
		d1x, d1y := rayDirection(arc, t1)
		c.planes = append(c.planes,
			halfPlane{px: -d0y, py: d0x, k: 1}, // cross(d0, v) >= 0
			halfPlane{px: d1y, py: -d1x, k: 1}, // cross(d1, v) <= 0
		)
		c.union = t1-t0 > math.Pi
	}
	return c
}

// appendRow appends the pixels of [x0, x1) on row y which are inside the
// sector.
func (c *sectorClip) appendRow(out SpanList, cx2, cy2, y, x0, x1 int) SpanList {
	if len(c.planes) == 1 {
		lo, hi := c.planes[0].span(cx2, cy2, y)
		return out.addRange(y, max(lo, x0), min(hi, x1))
	}
	lo0, hi0 := c.planes[0].span(cx2, cy2, y)
	lo1, hi1 := c.planes[1].span(cx2, cy2, y)
	if !c.union {
		return out.addRange(y, max(x0, lo0, lo1), min(x1, hi0, hi1))
	}

	lo0, hi0 = max(lo0, x0), min(hi0, x1)
	lo1, hi1 = max(lo1, x0), min(hi1, x1)
	switch {
	case lo0 >= hi0:
		return out.addRange(y, lo1, hi1)
	case lo1 >= hi1:
		return out.addRange(y, lo0, hi0)
	case lo1 > hi0:
		return out.addRange(y, lo0, hi0).addRange(y, lo1, hi1)
	case lo0 > hi1:
		return out.addRange(y, lo1, hi1).addRange(y, lo0, hi0)
	}
	return out.addRange(y, min(lo0, lo1), max(hi0, hi1))
}

// filledArcSpans appends the spans of a filled arc, in order of
// increasing y.
func filledArcSpans(out SpanList, arc Arc, mode ArcMode, yClip0, yClip1 int) SpanList {
	if arc.Width <= 0 || arc.Height <= 0 || arc.Angle2 == 0 {
		return out
	}
	var clip *sectorClip
	if !arc.IsFull() {
		clip = newSectorClip(arc, mode)
	}

	s := newEllipseScan(arc)
	y0 := max(arc.Y, yClip0)
	y1 := min(arc.Y+arc.Height, yClip1)
	for y := y0; y < y1; y++ {
		x0, x1 := s.row(y)
		if x0 >= x1 {
			continue
		}
		if clip == nil {
			out = out.addRange(y, x0, x1)
		} else {
			out = clip.appendRow(out, s.cx2, s.cy2, y, x0, x1)
		}
	}
	return out
}

// FillArcs fills each arc, closed according to gc.ArcMode.  Arcs with zero
// width or height are ignored.  Each arc is painted separately, so that
// overlapping arcs paint shared pixels more than once.
func (e *Engine) FillArcs(dst Drawable, gc *GC, arcs []Arc) {
	_, h := dst.Size()
	c := newCompositor(dst, gc)
	for _, arc := range arcs {
		e.spans = filledArcSpans(e.spans[:0], arc, gc.ArcMode, 0, h)
		c.paint(e.spans, gc.Foreground, true)
	}
}

// PolyArc draws the outlines of the arcs.  Arcs where the end of one
// coincides with the start of the next are joined using gc.Join, other
// arc ends get caps.  The dash pattern continues from one arc to the
// next.
func (e *Engine) PolyArc(dst Drawable, gc *GC, arcs []Arc) {
	if gc.LineWidth <= 0 {
		e.zeroPolyArc(dst, gc, arcs)
		return
	}
	e.beginStroke(dst, gc)
	e.strokeArcs(gc, arcs)
	e.commitStroke(dst, gc)
}

// arcTolerance is the maximal distance between a zero-width arc and the
// polyline used to draw it.
const arcTolerance = 0.25

// arcPoints appends the vertices of a polyline which approximates the
// arc.  The points are generated with the Chebyshev recurrence for the
// cosine and sine of equally spaced angles, rounded to the nearest pixel
// and deduplicated.
func arcPoints(buf []image.Point, arc Arc) []image.Point {
	g := newEllipseGeom(arc)
	t0, t1 := arc.radians()
	ext := t1 - t0

	r := max(g.a, g.b)
	step := math.Pi / 2
	if r > arcTolerance {
		step = min(step, 2*math.Acos(1-arcTolerance/r))
	}
	n := max(int(math.Ceil(math.Abs(ext)/step)), 1)
	delta := ext / float64(n)

	twoCos := 2 * math.Cos(delta)
	sPrev, cPrev := math.Sincos(t0 - delta)
	s, c := math.Sincos(t0)

	add := func(s, c float64) {
		p := image.Point{
			X: int(math.Floor(g.cx + g.a*c + 0.5)),
			Y: int(math.Floor(g.cy - g.b*s + 0.5)),
		}
		if len(buf) == 0 || buf[len(buf)-1] != p {
			buf = append(buf, p)
		}
	}
	for i := 0; i < n; i++ {
		add(s, c)
		s, sPrev = twoCos*s-sPrev, s
		c, cPrev = twoCos*c-cPrev, c
	}
	// the last point is computed directly, to avoid accumulated errors
	sEnd, cEnd := math.Sincos(t1)
	if arc.IsFull() {
		sEnd, cEnd = math.Sincos(t0)
	}
	add(sEnd, cEnd)
	return buf
}

// zeroPolyArc draws zero-width arcs as polylines.
func (e *Engine) zeroPolyArc(dst Drawable, gc *GC, arcs []Arc) {
	e.dashBuf = normalizeDash(e.dashBuf, gc.Dash)
	e.zero.begin(dst, gc, e.dashBuf)
	for _, arc := range arcs {
		if arc.Width < 0 || arc.Height < 0 {
			continue
		}
		e.arcPts = arcPoints(e.arcPts[:0], arc)
		closed := arc.IsFull() || isClosed(e.arcPts)
		e.zero.polyline(e.arcPts, gc.Cap != CapNotLast && !closed)
	}
	e.zero.commit(dst, gc)
}

// arcStroker holds the state of one PolyArc call with a wide line.
type arcStroker struct {
	e *Engine

	connected bool // the previous arc ended at prevEnd
	prevEnd   image.Point
	prevFace  face
}

// strokeArcs adds wide arcs to the span groups of the engine.
func (e *Engine) strokeArcs(gc *GC, arcs []Arc) {
	if e.dashed {
		e.dash.reset(e.dashBuf, gc.DashOffset)
	}
	e.fgMachine.reset(&e.fgOut)
	e.bgMachine.reset(&e.bgOut)

	s := &arcStroker{e: e}
	for _, arc := range arcs {
		switch {
		case arc.Width < 0 || arc.Height < 0:
			continue
		case arc.Width == 0 || arc.Height == 0:
			s.flush()
			e.degenerateArc(gc, arc)
		case arc.IsFull():
			s.flush()
			if !e.dashed {
				table := e.ringTable(gc.LineWidth, arc.Width, arc.Height)
				o := &e.fgOut
				o.spans = ringSpans(o.spans[:0], table, arc.X, arc.Y, nil, e.shapes.clipY0, e.shapes.clipY1)
				o.group.Append(o.spans, o.subtract)
				continue
			}
			s.arc(gc, arc, true)
			s.flush()
		default:
			s.arc(gc, arc, false)
		}
	}
	s.flush()
}

// flush ends the current chain of connected arcs.
func (s *arcStroker) flush() {
	if !s.connected {
		return
	}
	s.e.fgMachine.finish(s.prevFace, false)
	s.e.bgMachine.finish(s.prevFace, false)
	s.connected = false
}

// arc adds one non-degenerate arc.  If the arc starts where the previous
// arc ended, the two are joined.
func (s *arcStroker) arc(gc *GC, arc Arc, closed bool) {
	e := s.e
	g := newEllipseGeom(arc)
	table := e.ringTable(gc.LineWidth, arc.Width, arc.Height)
	origin := image.Point{X: arc.X, Y: arc.Y}
	t0, t1 := arc.radians()
	sign := 1.0
	if t1 < t0 {
		sign = -1
	}

	faceAt := func(t float64, start bool) face {
		pos := g.point(t).Sub(vec.Vec2{X: float64(origin.X), Y: float64(origin.Y)})
		out := g.tangent(t).Mul(sign)
		if start {
			out = out.Mul(-1)
		}
		return curveFace(origin, pos, out, e.hw)
	}
	startPt := roundPoint(g.point(t0))

	atChainStart := true
	if s.connected && !closed && startPt == s.prevEnd {
		first := faceAt(t0, true)
		e.fgMachine.vertex(s.prevFace, first)
		e.bgMachine.vertex(s.prevFace, first)
		atChainStart = false
	} else {
		s.flush()
	}

	dm := newDashMap(g.a, g.b)
	l0 := dm.length(t0)
	total := math.Abs(dm.length(t1) - l0)
	angleAt := func(d float64) float64 {
		switch d {
		case 0:
			return t0
		case total:
			return t1
		}
		return dm.angle(l0 + sign*d)
	}

	for d := 0.0; d < total; {
		m, o := e.phase()
		rem := math.Inf(1)
		if e.dashed {
			rem = e.dash.remaining()
		}
		d1 := min(total, d+rem)

		var b face
		if m != nil {
			ta, tb := angleAt(d), angleAt(d1)
			a := faceAt(ta, true)
			if !m.open {
				m.start(a, atChainStart && d == 0, closed)
			}
			lo, hi := min(ta, tb), max(ta, tb)
			clip := newAngleClip(g, lo, hi, min(t0, t1), e.hw)
			o.spans = ringSpans(o.spans[:0], table, arc.X, arc.Y, clip, e.shapes.clipY0, e.shapes.clipY1)
			o.group.Append(o.spans, o.subtract)
			b = faceAt(tb, false)
		}

		if d+rem <= total {
			if m != nil && !(closed && d+rem == total) {
				m.stop(b)
			}
			e.dash.next()
		} else if e.dashed {
			e.dash.advance(total - d)
		}
		d = d1
	}

	last := faceAt(t1, false)
	if closed {
		e.fgMachine.finish(last, true)
		e.bgMachine.finish(last, true)
		s.connected = false
		return
	}
	s.connected = true
	s.prevEnd = roundPoint(g.point(t1))
	s.prevFace = last
}

func roundPoint(p vec.Vec2) image.Point {
	return image.Point{X: int(math.Floor(p.X + 0.5)), Y: int(math.Floor(p.Y + 0.5))}
}

// degenerateArc draws an arc with zero width or height.  The arc is a
// straight line, and the result is the rectangle of the line width
// covering the projection of the swept angles onto the non-zero axis.
func (e *Engine) degenerateArc(gc *GC, arc Arc) {
	g := newEllipseGeom(arc)
	t0, t1 := arc.radians()
	lo, hi := min(t0, t1), max(t0, t1)

	lw := gc.LineWidth
	var r image.Rectangle
	switch {
	case arc.Width == 0 && arc.Height == 0:
		r = image.Rect(arc.X-lw/2, arc.Y-lw/2, arc.X-lw/2+lw, arc.Y-lw/2+lw)
	case arc.Width == 0:
		sMin := min(math.Sin(lo), math.Sin(hi))
		sMax := max(math.Sin(lo), math.Sin(hi))
		if angleInRange(math.Pi/2, lo, hi) {
			sMax = 1
		}
		if angleInRange(-math.Pi/2, lo, hi) {
			sMin = -1
		}
		y0 := int(math.Floor(g.cy - g.b*sMax + 0.5))
		y1 := int(math.Floor(g.cy-g.b*sMin+0.5)) + 1
		r = image.Rect(arc.X-lw/2, y0, arc.X-lw/2+lw, y1)
	default:
		cMin := min(math.Cos(lo), math.Cos(hi))
		cMax := max(math.Cos(lo), math.Cos(hi))
		if angleInRange(0, lo, hi) {
			cMax = 1
		}
		if angleInRange(math.Pi, lo, hi) {
			cMin = -1
		}
		x0 := int(math.Floor(g.cx + g.a*cMin + 0.5))
		x1 := int(math.Floor(g.cx+g.a*cMax+0.5)) + 1
		r = image.Rect(x0, arc.Y-lw/2, x1, arc.Y-lw/2+lw)
	}
	Logger().Debug("degenerate arc drawn as rectangle",
		"x", arc.X, "y", arc.Y, "width", arc.Width, "height", arc.Height)

	o := &e.fgOut
	o.spans = o.spans[:0]
	for y := max(r.Min.Y, e.shapes.clipY0); y < min(r.Max.Y, e.shapes.clipY1); y++ {
		o.spans = o.spans.addRange(y, r.Min.X, r.Max.X)
	}
	o.group.Append(o.spans, o.subtract)
}
