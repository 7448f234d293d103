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

// SpanGroup collects the span lists of one drawing call, so that the
// union can be painted with every pixel touched exactly once.
//
// All spans are copied into an arena owned by the group.  A group can be
// reused after Reset, keeping its buffers.
type SpanGroup struct {
	spans []Span
	lists []spanRange

	yMin, yMax int

	// per-row chains through spans, used by subtract: rowHeads[y-rowBase]
	// is the last span on row y, next[i] the one before spans[i]
	next     []int
	rowHeads []int
	rowBase  int

	// scratch space for merge
	heads []int
	cells []rowCell
	row   []Span
	out   SpanList
}

// spanRange is one appended list, stored as spans[start:end].
type spanRange struct {
	start, end int
	yMin, yMax int
}

// rowCell is an entry of the per-row linked lists used by merge.
// The next field is an index into the cells slice, -1 ends the list.
type rowCell struct {
	x0, x1 int
	next   int
}

// Reset empties the group.
func (g *SpanGroup) Reset() {
	g.spans = g.spans[:0]
	g.lists = g.lists[:0]
	g.next = g.next[:0]
	g.rowHeads = g.rowHeads[:0]
	g.yMin = 0
	g.yMax = -1
}

// Empty reports whether the group holds no spans.
func (g *SpanGroup) Empty() bool {
	return len(g.lists) == 0
}

// Append adds a y-sorted list to the group.  If subtractFrom is not nil,
// the pixels of the list are removed from all spans already collected in
// subtractFrom.  This is used for double-dashed lines, where the
// foreground must win over the background painted in a later phase.
func (g *SpanGroup) Append(list SpanList, subtractFrom *SpanGroup) {
	if len(list) == 0 {
		return
	}
	if subtractFrom != nil {
		subtractFrom.subtract(list)
	}

	start := len(g.spans)
	g.spans = append(g.spans, list...)
	r := spanRange{
		start: start,
		end:   len(g.spans),
		yMin:  list[0].Y,
		yMax:  list[len(list)-1].Y,
	}
	if len(g.lists) == 0 {
		g.yMin, g.yMax = r.yMin, r.yMax
	} else {
		g.yMin = min(g.yMin, r.yMin)
		g.yMax = max(g.yMax, r.yMax)
	}
	g.lists = append(g.lists, r)
}

// subtract removes the pixels covered by list from the group.
// Spans are trimmed or split; fully covered spans get width zero.
func (g *SpanGroup) subtract(list SpanList) {
	g.index()
	for _, s := range list {
		if s.Width <= 0 || s.Y < g.yMin || s.Y > g.yMax {
			continue
		}
		a, b := s.X, s.End()
		for i := g.rowHeads[s.Y-g.rowBase]; i >= 0; i = g.next[i] {
			t := g.spans[i]
			if t.Width <= 0 || b <= t.X || a >= t.End() {
				continue
			}
			switch {
			case a <= t.X && b >= t.End():
				t.Width = 0
			case a <= t.X:
				t.Width = t.End() - b
				t.X = b
			case b >= t.End():
				t.Width = a - t.X
			default:
				// the hole is strictly inside t: keep the left part
				// in place and store the right part as a new list.
				// The new span goes to the head of the row chain, so
				// the walk below is not affected.
				right := Span{Y: t.Y, X: b, Width: t.End() - b}
				t.Width = a - t.X
				g.appendSingle(right)
				g.index()
			}
			g.spans[i] = t
		}
	}
}

// index links the spans appended since the last call into the per-row
// chains, growing the chain table to cover rows yMin, ..., yMax.
func (g *SpanGroup) index() {
	if len(g.next) == len(g.spans) {
		return
	}
	if len(g.rowHeads) == 0 {
		g.rowBase = g.yMin
	}
	if g.yMin < g.rowBase {
		g.rowHeads = slices.Insert(g.rowHeads, 0, slices.Repeat([]int{-1}, g.rowBase-g.yMin)...)
		g.rowBase = g.yMin
	}
	if n := g.yMax - g.rowBase + 1; n > len(g.rowHeads) {
		g.rowHeads = append(g.rowHeads, slices.Repeat([]int{-1}, n-len(g.rowHeads))...)
	}
	for i := len(g.next); i < len(g.spans); i++ {
		row := g.spans[i].Y - g.rowBase
		g.next = append(g.next, g.rowHeads[row])
		g.rowHeads[row] = i
	}
}

func (g *SpanGroup) appendSingle(s Span) {
	g.spans = append(g.spans, s)
	g.lists = append(g.lists, spanRange{
		start: len(g.spans) - 1,
		end:   len(g.spans),
		yMin:  s.Y,
		yMax:  s.Y,
	})
}

// PaintUnique paints the union of all spans in the group, touching every
// pixel exactly once, using a single call to the compositor.
func (g *SpanGroup) PaintUnique(dst Drawable, gc *GC, pixel Pixel) {
	if g.Empty() {
		return
	}
	_, h := dst.Size()
	merged := g.merge(0, h-1)
	c := newCompositor(dst, gc)
	c.paint(merged, pixel, true)
}

// Paint paints every list of the group separately.  This is only correct
// if the caller knows that the lists do not overlap, or if painting a
// pixel twice is harmless.
func (g *SpanGroup) Paint(dst Drawable, gc *GC, pixel Pixel) {
	c := newCompositor(dst, gc)
	for _, r := range g.lists {
		c.paint(g.spans[r.start:r.end], pixel, true)
	}
}

// merge returns the union of all spans on rows yLo, ..., yHi as a
// y-sorted list of disjoint, non-adjacent spans.  The result is only
// valid until the group is changed.
func (g *SpanGroup) merge(yLo, yHi int) SpanList {
	yLo = max(yLo, g.yMin)
	yHi = min(yHi, g.yMax)
	g.out = g.out[:0]
	if yLo > yHi {
		return g.out
	}

	// bucket the spans by row, using one linked list per row
	nRows := yHi - yLo + 1
	g.heads = slices.Grow(g.heads[:0], nRows)[:nRows]
	for i := range g.heads {
		g.heads[i] = -1
	}
	g.cells = g.cells[:0]
	for _, s := range g.spans {
		if s.Width <= 0 || s.Y < yLo || s.Y > yHi {
			continue
		}
		row := s.Y - yLo
		g.cells = append(g.cells, rowCell{x0: s.X, x1: s.End(), next: g.heads[row]})
		g.heads[row] = len(g.cells) - 1
	}

	for row, p := range g.heads {
		if p < 0 {
			continue
		}
		y := yLo + row
		g.row = g.row[:0]
		for ; p >= 0; p = g.cells[p].next {
			cell := g.cells[p]
			g.row = append(g.row, Span{Y: y, X: cell.x0, Width: cell.x1 - cell.x0})
		}
		slices.SortFunc(g.row, func(a, b Span) int {
			return cmp.Compare(a.X, b.X)
		})

		cur := g.row[0]
		for _, s := range g.row[1:] {
			if s.X <= cur.End() {
				if s.End() > cur.End() {
					cur.Width = s.End() - cur.X
				}
				continue
			}
			g.out = append(g.out, cur)
			cur = s
		}
		g.out = append(g.out, cur)
	}
	return g.out
}
