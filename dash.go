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

// normalizeDash copies the dash pattern into buf, clamping entries to at
// least one pixel and repeating odd-length patterns once.  An empty
// pattern becomes a single on/off pair of length one.
func normalizeDash(buf, dash []int) []int {
	buf = buf[:0]
	for _, d := range dash {
		buf = append(buf, max(d, 1))
	}
	if len(buf) == 0 {
		buf = append(buf, 1, 1)
	}
	if len(buf)%2 == 1 {
		buf = append(buf, buf...)
	}
	return buf
}

// dashCursor is a position within a dash pattern.  Even indices are the
// "on" dashes, odd indices the "off" dashes.  The cursor persists across
// segment boundaries of a polyline and across the arcs of one call.
type dashCursor struct {
	pattern []int
	index   int
	offset  float64 // distance already used from pattern[index]
	period  int
}

// reset positions the cursor at the given offset into the pattern.
func (d *dashCursor) reset(pattern []int, dashOffset int) {
	d.pattern = pattern
	d.period = 0
	for _, v := range pattern {
		d.period += v
	}
	d.index = 0
	d.offset = 0
	d.advance(float64(wrap(dashOffset, d.period)))
}

// on reports whether the cursor is in an "on" dash.
func (d *dashCursor) on() bool {
	return d.index%2 == 0
}

// remaining returns the distance to the end of the current dash.
func (d *dashCursor) remaining() float64 {
	return float64(d.pattern[d.index]) - d.offset
}

// next moves the cursor to the start of the following dash.
func (d *dashCursor) next() {
	d.offset = 0
	d.index++
	if d.index == len(d.pattern) {
		d.index = 0
	}
}

// advance moves the cursor forward by dist.  A position exactly at the
// end of a dash moves on to the start of the next dash.
func (d *dashCursor) advance(dist float64) {
	if d.period > 0 && dist >= float64(d.period) {
		n := int(dist / float64(d.period))
		dist -= float64(n * d.period)
	}
	for dist > 0 {
		rem := d.remaining()
		if dist < rem {
			d.offset += dist
			return
		}
		dist -= rem
		d.next()
	}
}
