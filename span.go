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
	"slices"
)

// Span is a horizontal run of pixels: X, ..., X+Width-1 on row Y.
type Span struct {
	Y, X, Width int
}

// End returns the first x coordinate after the span.
func (s Span) End() int {
	return s.X + s.Width
}

// SpanList is a sequence of spans.  Lists built by the engine are sorted
// by Y; spans on the same row may appear in any order.
type SpanList []Span

// add appends the run X, ..., X+width-1 on row y.  Empty runs are dropped.
func (l SpanList) add(y, x, width int) SpanList {
	if width <= 0 {
		return l
	}
	return append(l, Span{Y: y, X: x, Width: width})
}

// addRange appends the run x0, ..., x1-1 on row y.
func (l SpanList) addRange(y, x0, x1 int) SpanList {
	return l.add(y, x0, x1-x0)
}

// YRange returns the first and last row of a y-sorted list.
// For an empty list, ok is false.
func (l SpanList) YRange() (yMin, yMax int, ok bool) {
	if len(l) == 0 {
		return 0, 0, false
	}
	return l[0].Y, l[len(l)-1].Y, true
}

// IsSorted reports whether the list is sorted by Y.
func (l SpanList) IsSorted() bool {
	return slices.IsSortedFunc(l, func(a, b Span) int {
		return cmp.Compare(a.Y, b.Y)
	})
}

// Area returns the total number of pixels of all spans, counting
// overlapping pixels repeatedly.
func (l SpanList) Area() int {
	n := 0
	for _, s := range l {
		if s.Width > 0 {
			n += s.Width
		}
	}
	return n
}
