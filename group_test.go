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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanGroupMerge(t *testing.T) {
	var g SpanGroup
	g.Reset()
	assert.True(t, g.Empty())

	g.Append(SpanList{{Y: 0, X: 0, Width: 5}, {Y: 1, X: 2, Width: 2}}, nil)
	g.Append(SpanList{{Y: 0, X: 3, Width: 5}, {Y: 1, X: 4, Width: 1}, {Y: 2, X: 9, Width: 1}}, nil)
	g.Append(SpanList{{Y: 1, X: 7, Width: 2}}, nil)
	assert.False(t, g.Empty())

	want := SpanList{
		{Y: 0, X: 0, Width: 8},
		{Y: 1, X: 2, Width: 3}, // adjacent spans are joined
		{Y: 1, X: 7, Width: 2},
		{Y: 2, X: 9, Width: 1},
	}
	assert.Equal(t, want, g.merge(0, 10))

	// restricted row range
	assert.Equal(t, want[1:3], g.merge(1, 1))
}

func TestSpanGroupPaintUnique(t *testing.T) {
	var g SpanGroup
	g.Reset()
	g.Append(SpanList{{Y: 0, X: 0, Width: 6}, {Y: 1, X: 0, Width: 6}}, nil)
	g.Append(SpanList{{Y: 0, X: 3, Width: 6}, {Y: 1, X: 3, Width: 2}}, nil)
	g.Append(SpanList{{Y: 0, X: 4, Width: 1}, {Y: 2, X: -3, Width: 20}}, nil)
	g.Append(SpanList{{Y: 1, X: 1, Width: 4}, {Y: 5, X: 0, Width: 3}}, nil) // row 5 is clipped

	d := newCountingDrawable(10, 4)
	g.PaintUnique(d, NewGC(), 7)

	for y := range 4 {
		for x := range 10 {
			i := y*10 + x
			var want int
			switch y {
			case 0:
				want = btoi(x < 9)
			case 1:
				want = btoi(x < 6)
			case 2:
				want = 1
			}
			require.Equal(t, want, d.count[i], "pixel (%d, %d)", x, y)
			if want > 0 {
				assert.Equal(t, Pixel(7), d.last[i])
			}
		}
	}
}

func TestSpanGroupSubtract(t *testing.T) {
	type testCase struct {
		name string
		hole Span
		want SpanList
	}
	cases := []testCase{
		{"inside", Span{Y: 0, X: 3, Width: 2}, SpanList{{Y: 0, X: 0, Width: 3}, {Y: 0, X: 5, Width: 5}}},
		{"left", Span{Y: 0, X: -2, Width: 4}, SpanList{{Y: 0, X: 2, Width: 8}}},
		{"right", Span{Y: 0, X: 8, Width: 4}, SpanList{{Y: 0, X: 0, Width: 8}}},
		{"all", Span{Y: 0, X: -1, Width: 12}, SpanList{}},
		{"other_row", Span{Y: 1, X: 0, Width: 10}, SpanList{{Y: 0, X: 0, Width: 10}}},
		{"touching", Span{Y: 0, X: 10, Width: 3}, SpanList{{Y: 0, X: 0, Width: 10}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var bg, fg SpanGroup
			bg.Reset()
			fg.Reset()
			bg.Append(SpanList{{Y: 0, X: 0, Width: 10}}, nil)
			fg.Append(SpanList{tc.hole}, &bg)

			got := bg.merge(0, 0)
			assert.Equal(t, len(tc.want), len(got))
			if len(tc.want) > 0 {
				assert.Equal(t, tc.want, got)
			}

			// the foreground itself is unchanged
			assert.Equal(t, SpanList{tc.hole}, fg.merge(tc.hole.Y, tc.hole.Y))
		})
	}
}

// TestSpanGroupSubtractRepeated punches several holes into the same span,
// including into the pieces created by earlier holes.
func TestSpanGroupSubtractRepeated(t *testing.T) {
	var bg SpanGroup
	bg.Reset()
	bg.Append(SpanList{{Y: 3, X: 0, Width: 20}, {Y: 4, X: 0, Width: 20}}, nil)
	bg.subtract(SpanList{{Y: 3, X: 4, Width: 2}})
	bg.subtract(SpanList{{Y: 3, X: 10, Width: 2}, {Y: 3, X: 15, Width: 1}, {Y: 4, X: 0, Width: 1}})

	want := SpanList{
		{Y: 3, X: 0, Width: 4},
		{Y: 3, X: 6, Width: 4},
		{Y: 3, X: 12, Width: 3},
		{Y: 3, X: 16, Width: 4},
		{Y: 4, X: 1, Width: 19},
	}
	assert.Equal(t, want, bg.merge(0, 10))
}

// TestSpanGroupSubtractManyLists interleaves background lists with
// foreground lists on a growing range of rows, and compares the result
// to a pixel map.
func TestSpanGroupSubtractManyLists(t *testing.T) {
	type pixel struct{ x, y int }
	want := map[pixel]bool{}

	var bg, fg SpanGroup
	bg.Reset()
	fg.Reset()
	for k := range 300 {
		// rows move outwards in both directions as k grows
		y := (k * 7) % 23
		if k%2 == 1 {
			y = -y - k/10
		} else {
			y += k / 10
		}
		s := Span{Y: y, X: (k * 13) % 40, Width: 1 + k%7}
		if k%3 == 0 {
			fg.Append(SpanList{s}, &bg)
			for x := s.X; x < s.End(); x++ {
				delete(want, pixel{x, y})
			}
		} else {
			bg.Append(SpanList{s}, nil)
			for x := s.X; x < s.End(); x++ {
				want[pixel{x, y}] = true
			}
		}
	}

	got := map[pixel]bool{}
	for _, s := range bg.merge(-100, 100) {
		for x := s.X; x < s.End(); x++ {
			got[pixel{x, s.Y}] = true
		}
	}
	assert.Equal(t, want, got)
}

func TestSpanGroupReuse(t *testing.T) {
	var g SpanGroup
	g.Reset()
	g.Append(SpanList{{Y: 0, X: 0, Width: 4}}, nil)
	g.Reset()
	assert.True(t, g.Empty())
	g.Append(SpanList{{Y: 2, X: 1, Width: 1}}, nil)

	img := NewImage(4, 4)
	g.PaintUnique(img, NewGC(), 1)
	assert.Equal(t, 1, painted(img))
	assert.Equal(t, Pixel(1), img.At(1, 2))
}

func TestSpanGroupPaint(t *testing.T) {
	var g SpanGroup
	g.Reset()
	g.Append(SpanList{{Y: 0, X: 0, Width: 2}}, nil)
	g.Append(SpanList{{Y: 0, X: 1, Width: 2}}, nil)

	d := newCountingDrawable(4, 1)
	g.Paint(d, NewGC(), 1)
	assert.Equal(t, []int{1, 2, 1, 0}, d.count)
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
