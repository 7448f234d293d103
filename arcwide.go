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
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// ellipseEps clamps the roots of the offset curve equation to the
// ellipse.
const ellipseEps = 1e-6

// RingRow is one scanline of a wide ellipse.  All coordinates are
// relative to the top-left corner of the bounding box of the ellipse.
type RingRow struct {
	Y      int
	X0, W0 int // left span
	X1, W1 int // right span, W1 == 0 if the row is a single span
}

// RingTable lists the pixels of a wide ellipse, one row per scanline, in
// order of increasing Y.  Tables are immutable once built.
type RingTable struct {
	Rows []RingRow
}

// computeRingTable computes the pixels covered by an ellipse of the given
// size, stroked with the given line width.
func computeRingTable(key RingKey) *RingTable {
	if key.Width == key.Height {
		return circleRing(key)
	}
	return ellipseRing(key)
}

// circleRing uses the closed form of the inner and outer circle.
func circleRing(key RingKey) *RingTable {
	c := float64(key.Width) / 2
	ro := c + float64(key.LineWidth)/2
	ri := c - float64(key.LineWidth)/2

	t := &RingTable{}
	y0 := int(math.Ceil(c - ro))
	y1 := int(math.Ceil(c + ro))
	for y := y0; y < y1; y++ {
		v := float64(y) - c
		d := ro*ro - v*v
		if d < 0 {
			continue
		}
		outx := math.Sqrt(d)
		row := RingRow{Y: y}
		lx := int(math.Ceil(c - outx))
		rx := int(math.Ceil(c + outx))
		if ri > 0 && math.Abs(v) < ri {
			inx := math.Sqrt(ri*ri - v*v)
			row.X0, row.W0 = lx, int(math.Ceil(c-inx))-lx
			row.X1 = int(math.Ceil(c + inx))
			row.W1 = rx - row.X1
		} else {
			row.X0, row.W0 = lx, rx-lx
		}
		if row.W0 <= 0 && row.W1 <= 0 {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// ellipseRing finds the outer and inner boundary of a wide ellipse on
// each scanline.  The boundary is the set of points at distance lw/2 from
// the ellipse; on each scanline the boundary points solve a quartic, which
// is reduced to a cubic resolvent.  One half of the ellipse is computed
// and mirrored.
func ellipseRing(key RingKey) *RingTable {
	lw := key.LineWidth
	w := float64(key.Width) / 2
	h := float64(key.Height) / 2
	r := float64(lw) / 2
	rs := r * r
	hs := h * h
	wh := w*w - hs
	nk := w * r
	vk := (nk * hs) / (wh + wh)
	hf := hs * hs
	nk = (hf - nk*nk) / wh
	fk := hf / wh
	hepp := h + ellipseEps
	hepm := h - ellipseEps

	xorg := 0.0
	if key.Width&1 != 0 {
		xorg = 0.5
	}
	xi := key.Width >> 1

	row := func(y int, outx, inx float64) RingRow {
		res := RingRow{Y: y}
		lx := int(math.Ceil(xorg - outx))
		if inx <= 0 {
			res.X0 = xi + lx
			res.W0 = int(math.Ceil(xorg+outx)) - lx
		} else {
			res.X0 = xi + lx
			res.W0 = int(math.Ceil(xorg-inx)) - lx
			rx := int(math.Ceil(xorg + inx))
			res.X1 = xi + rx
			res.W1 = int(math.Ceil(xorg+outx)) - rx
		}
		return res
	}

	k := (key.Height >> 1) + ((lw - 1) >> 1)
	yUpper := (key.Height >> 1) - k
	yLower := (key.Height >> 1) + (key.Height & 1) + k

	var upper, lower []RingRow
	if lw&1 == 0 && key.Width&1 == 0 {
		upper = append(upper, RingRow{Y: yUpper - 1, X0: xi, W0: 1})
		lower = append(lower, RingRow{Y: yLower + 1, X0: xi, W0: 1})
	}

	var outx float64
	i := 0
	for kk := h + float64((lw-1)>>1); kk > 0; kk -= 1 {
		n := (kk*kk + nk) / 6
		nc := n * n * n
		vr := vk * kk
		t := nc + vr*vr
		d := nc + t
		var z float64
		var flip int
		if d < 0 {
			d = nc
			b := n
			if (b < 0) == (t < 0) {
				b = -b
				d = -d
			}
			z = n - 2*b*math.Cos(math.Acos(clamp(-t/d, -1, 1))/3)
			if (z < 0) == (vr < 0) {
				flip = 2
			} else {
				flip = 1
			}
		} else {
			d = vr * math.Sqrt(d)
			z = n + math.Cbrt(t+d) + math.Cbrt(t-d)
			flip = 0
		}
		a := math.Sqrt(max(z+z-nk, 0))
		tt := 0.0
		if a > 0 {
			tt = (fk - z) * kk / a
		}

		inx := 0.0
		solution := false
		b := -a + kk
		d = b*b - 4*(z+tt)
		if d >= 0 {
			d = math.Sqrt(d)
			y := (b + d) / 2
			if y >= 0 && y < hepp {
				solution = true
				x, t := offsetPoint(y, kk, w, h, hepm, rs)
				if flip == 2 {
					inx = x - t
				} else {
					outx = x + t
				}
			}
		}
		b = a + kk
		d = b*b - 4*(z-tt)
		// rounding errors can make d slightly negative near the axis
		if d < 0 && !solution {
			d = 0
		}
		if d >= 0 {
			d = math.Sqrt(d)
			y := (b + d) / 2
			if y < hepp {
				if y > hepm {
					y = h
				}
				s := y / h
				x := w * math.Sqrt(max(1-s*s, 0))
				s = kk - y
				if rs-s*s >= 0 {
					inx = x - math.Sqrt(rs-s*s)
				} else {
					inx = x
				}
			}
			y = (b - d) / 2
			if y >= 0 {
				x, t := offsetPoint(y, kk, w, h, hepm, rs)
				if flip == 1 {
					inx = x - t
				} else {
					outx = x + t
				}
			}
		}

		upper = append(upper, row(yUpper+i, outx, inx))
		lower = append(lower, row(yLower-i, outx, inx))
		i++
	}

	if key.Height&1 == 0 {
		// the centre row
		outx := w + r
		var inx float64
		switch {
		case r >= h && r <= w:
			inx = 0
		case nk < 0 && -nk < hs:
			inx = w*math.Sqrt(1+nk/hs) - math.Sqrt(rs+nk)
			if inx > w-r {
				inx = w - r
			}
		default:
			inx = w - r
		}
		upper = append(upper, row(key.Height>>1, outx, inx))
	}

	slices.Reverse(lower)
	t := &RingTable{Rows: make([]RingRow, 0, len(upper)+len(lower))}
	for _, rr := range append(upper, lower...) {
		if rr.W0 > 0 || rr.W1 > 0 {
			t.Rows = append(t.Rows, rr)
		}
	}
	return t
}

// offsetPoint returns the x coordinate of the ellipse point at height y
// and the horizontal distance to the offset circle on scanline kk.
func offsetPoint(y, kk, w, h, hepm, rs float64) (x, t float64) {
	if y > hepm {
		y = h
	}
	s := y / h
	x = w * math.Sqrt(max(1-s*s, 0))
	s = kk - y
	if rs-s*s >= 0 {
		t = math.Sqrt(rs - s*s)
	}
	return x, t
}

func clamp(x, lo, hi float64) float64 {
	return max(lo, min(hi, x))
}

// ellipseGeom describes an ellipse in device coordinates.  Angles are
// parametric: the point at angle t is (cx + a*cos(t), cy - b*sin(t)).
type ellipseGeom struct {
	cx, cy float64
	a, b   float64
}

func newEllipseGeom(arc Arc) ellipseGeom {
	return ellipseGeom{
		cx: float64(arc.X) + float64(arc.Width)/2,
		cy: float64(arc.Y) + float64(arc.Height)/2,
		a:  float64(arc.Width) / 2,
		b:  float64(arc.Height) / 2,
	}
}

// point returns the device position of the point at angle t.
func (g ellipseGeom) point(t float64) vec.Vec2 {
	return vec.Vec2{X: g.cx + g.a*math.Cos(t), Y: g.cy - g.b*math.Sin(t)}
}

// tangent returns the direction of increasing t at angle t, in device
// coordinates.
func (g ellipseGeom) tangent(t float64) vec.Vec2 {
	return vec.Vec2{X: -g.a * math.Sin(t), Y: -g.b * math.Cos(t)}
}

// angleClip decides whether a pixel of a wide ellipse belongs to the arc
// between the parametric angles lo and hi.  A pixel belongs to the arc if
// the closest point of the ellipse lies on the arc.  Close to the ellipse
// this is the same as testing the side of the normal lines at the arc
// ends.  Further out, where normal lines of a flat ellipse cross, the
// closest point keeps pixels with the part of the stroke they are next
// to.  Pixels whose closest point is at lo are inside, pixels whose
// closest point is at hi are outside.
//
// Angles of closest points are reduced to [base, base+2*pi).  All pieces
// of one arc use the same base, so that the pieces of a dashed arc
// partition the pixels of the solid arc.
type angleClip struct {
	g      ellipseGeom
	lo, hi float64
	base   float64
	hw     float64
}

func newAngleClip(g ellipseGeom, lo, hi, base, hw float64) *angleClip {
	return &angleClip{g: g, lo: lo, hi: hi, base: base, hw: hw}
}

// closestAngle returns the parametric angle of the point of the ellipse
// with half axes a and b closest to (x, y), in y-up coordinates relative
// to the centre.  The iteration works in the first quadrant, following
// the centre of curvature of the current estimate; the other quadrants
// are obtained by symmetry.  Points on the positive x-axis give angles
// in [0, pi/2].
func closestAngle(a, b, x, y float64) float64 {
	px, py := math.Abs(x), math.Abs(y)

	var t float64
	switch {
	case a == b:
		t = math.Atan2(py, px)
	case a <= 0 || b <= 0:
		t = 0
	default:
		tx, ty := math.Sqrt2/2, math.Sqrt2/2
		for range closestAngleSteps {
			ex := (a*a - b*b) * tx * tx * tx / a
			ey := (b*b - a*a) * ty * ty * ty / b
			rx, ry := a*tx-ex, b*ty-ey
			qx, qy := px-ex, py-ey
			q := math.Hypot(qx, qy)
			if q == 0 {
				break
			}
			r := math.Hypot(rx, ry)
			tx = clamp((qx*r/q+ex)/a, 0, 1)
			ty = clamp((qy*r/q+ey)/b, 0, 1)
			n := math.Hypot(tx, ty)
			if n == 0 {
				break
			}
			tx, ty = tx/n, ty/n
		}
		t = math.Atan2(ty, tx)
	}

	if x < 0 {
		t = math.Pi - t
	}
	if y < 0 {
		t = -t
	}
	return t
}

// closestAngleSteps is the number of refinement steps in closestAngle.
const closestAngleSteps = 6

// inside reports whether the pixel (x, y) is part of the arc.
func (c *angleClip) inside(x, y int) bool {
	t := closestAngle(c.g.a, c.g.b, float64(x)-c.g.cx, c.g.cy-float64(y))
	t = c.base + math.Mod(math.Mod(t-c.base, 2*math.Pi)+2*math.Pi, 2*math.Pi)
	if t >= c.base+2*math.Pi {
		t = c.base
	}
	return t >= c.lo && t < c.hi
}

// rowRange returns a range of device rows which contains all pixels of
// the arc.
func (c *angleClip) rowRange() (y0, y1 int) {
	hw := c.hw
	sMin := min(math.Sin(c.lo), math.Sin(c.hi))
	sMax := max(math.Sin(c.lo), math.Sin(c.hi))
	if angleInRange(math.Pi/2, c.lo, c.hi) {
		sMax = 1
	}
	if angleInRange(-math.Pi/2, c.lo, c.hi) {
		sMin = -1
	}
	y0 = int(math.Floor(c.g.cy - c.g.b*sMax - hw - 1))
	y1 = int(math.Ceil(c.g.cy - c.g.b*sMin + hw + 1))
	return y0, y1
}

// angleInRange reports whether t, or t shifted by a multiple of 2*pi,
// lies in [lo, hi].
func angleInRange(t, lo, hi float64) bool {
	t = lo + math.Mod(math.Mod(t-lo, 2*math.Pi)+2*math.Pi, 2*math.Pi)
	return t <= hi
}

// ringSpans appends the spans of a ring table placed at (ox, oy).  If clip
// is not nil, only pixels inside the clip are used.  Rows outside
// [yClip0, yClip1) are skipped.
func ringSpans(out SpanList, t *RingTable, ox, oy int, clip *angleClip, yClip0, yClip1 int) SpanList {
	rows := t.Rows
	if clip != nil {
		y0, y1 := clip.rowRange()
		byY := func(r RingRow, y int) int { return cmp.Compare(r.Y, y) }
		lo, _ := slices.BinarySearchFunc(rows, y0-oy, byY)
		hi, _ := slices.BinarySearchFunc(rows, y1-oy, byY)
		rows = rows[lo:min(hi+1, len(rows))]
	}
	for _, r := range rows {
		y := r.Y + oy
		if y < yClip0 {
			continue
		}
		if y >= yClip1 {
			break
		}
		out = clippedRun(out, y, ox+r.X0, r.W0, clip)
		out = clippedRun(out, y, ox+r.X1, r.W1, clip)
	}
	return out
}

// clippedRun appends the pixels of the run x, ..., x+w-1 on row y which
// are inside the clip.
func clippedRun(out SpanList, y, x, w int, clip *angleClip) SpanList {
	if w <= 0 {
		return out
	}
	if clip == nil {
		return out.add(y, x, w)
	}
	start := -1
	for i := x; i < x+w; i++ {
		if clip.inside(i, y) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			out = out.addRange(y, start, i)
			start = -1
		}
	}
	if start >= 0 {
		out = out.addRange(y, start, x+w)
	}
	return out
}
