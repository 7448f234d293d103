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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func wideGC(width int, cap CapStyle, join JoinStyle) *GC {
	gc := NewGC()
	gc.LineWidth = width
	gc.Cap = cap
	gc.Join = join
	return gc
}

func TestWideLineAxisAligned(t *testing.T) {
	e := NewEngine()
	for _, width := range []int{1, 2, 4, 5} {
		gc := wideGC(width, CapButt, JoinMiter)

		img := NewImage(20, 12)
		e.PolyLine(img, gc, CoordModeOrigin, []image.Point{{4, 5}, {14, 5}})
		assert.Equal(t, 10*width, painted(img), "horizontal, width %d", width)
		col := 0
		for y := range 12 {
			col += int(img.At(9, y))
		}
		assert.Equal(t, width, col, "horizontal, width %d", width)

		img = NewImage(12, 20)
		e.PolyLine(img, gc, CoordModeOrigin, []image.Point{{5, 14}, {5, 4}})
		assert.Equal(t, 10*width, painted(img), "vertical, width %d", width)
	}
}

// TestWideLineCrossSection checks that the extent of a butt-capped line,
// measured along a pixel row or column through its midpoint, matches the
// line width.
func TestWideLineCrossSection(t *testing.T) {
	dirs := []image.Point{{20, 7}, {7, 20}, {16, 16}, {-12, 18}, {22, -2}, {-18, -10}}
	e := NewEngine()
	for _, width := range []int{3, 4, 6} {
		gc := wideGC(width, CapButt, JoinMiter)
		for _, d := range dirs {
			mid := image.Point{X: 32, Y: 32}
			p, q := mid.Sub(d), mid.Add(d)

			img := NewImage(64, 64)
			e.PolyLine(img, gc, CoordModeOrigin, []image.Point{p, q})

			l := math.Hypot(float64(d.X), float64(d.Y))
			count := 0
			var want float64
			if abs(d.X) >= abs(d.Y) {
				for y := range 64 {
					count += int(img.At(mid.X, y))
				}
				want = float64(width) * l / float64(abs(d.X))
			} else {
				for x := range 64 {
					count += int(img.At(x, mid.Y))
				}
				want = float64(width) * l / float64(abs(d.Y))
			}
			assert.InDelta(t, want, float64(count), 1, "width %d, direction %v", width, d)
		}
	}
}

func TestWideLineCaps(t *testing.T) {
	e := NewEngine()
	area := func(cap CapStyle) int {
		img := NewImage(20, 12)
		e.PolyLine(img, wideGC(4, cap, JoinMiter), CoordModeOrigin, []image.Point{{4, 5}, {14, 5}})
		return painted(img)
	}
	butt := area(CapButt)
	round := area(CapRound)
	projecting := area(CapProjecting)
	triangular := area(CapTriangular)

	assert.Equal(t, 40, butt)
	assert.Equal(t, 40, area(CapNotLast))
	assert.Equal(t, 56, projecting)
	assert.Greater(t, round, butt)
	assert.Less(t, round, projecting)
	assert.Greater(t, triangular, butt)
	assert.Less(t, triangular, projecting)
}

func TestWideLineJoins(t *testing.T) {
	e := NewEngine()
	corner := []image.Point{{5, 5}, {25, 5}, {25, 25}}
	area := func(join JoinStyle) int {
		img := NewImage(32, 32)
		e.PolyLine(img, wideGC(6, CapButt, join), CoordModeOrigin, corner)
		return painted(img)
	}
	miter := area(JoinMiter)
	round := area(JoinRound)
	bevel := area(JoinBevel)

	assert.GreaterOrEqual(t, miter, round)
	assert.GreaterOrEqual(t, round, bevel)
	assert.Greater(t, miter, bevel)

	// a right angle miter fills the corner square
	img := NewImage(32, 32)
	e.PolyLine(img, wideGC(6, CapButt, JoinMiter), CoordModeOrigin, corner)
	assert.Equal(t, Pixel(1), img.At(27, 2))
}

func TestWideLineMiterLimit(t *testing.T) {
	sharp := []image.Point{{5, 30}, {40, 20}, {5, 22}}
	e := NewEngine()

	gc := wideGC(6, CapButt, JoinBevel)
	bevel := NewImage(64, 48)
	e.PolyLine(bevel, gc, CoordModeOrigin, sharp)

	gc = wideGC(6, CapButt, JoinMiter)
	gc.MiterLimit = 1
	limited := NewImage(64, 48)
	e.PolyLine(limited, gc, CoordModeOrigin, sharp)
	assertSameImage(t, "miter_limit", bevel, limited)

	gc.MiterLimit = defaultMiterLimit
	miter := NewImage(64, 48)
	e.PolyLine(miter, gc, CoordModeOrigin, sharp)
	assert.Greater(t, painted(miter), painted(bevel))
}

func TestWideLineClosed(t *testing.T) {
	e := NewEngine()
	gc := wideGC(2, CapButt, JoinMiter)

	img := NewImage(20, 20)
	e.PolyLine(img, gc, CoordModeOrigin, []image.Point{{5, 5}, {15, 5}, {15, 15}, {5, 15}, {5, 5}})
	assert.Equal(t, 12*12-8*8, painted(img))
	assert.Equal(t, Pixel(1), img.At(4, 4), "seam is not joined")

	// the seam does not depend on the start vertex
	other := NewImage(20, 20)
	e.PolyLine(other, gc, CoordModeOrigin, []image.Point{{15, 15}, {5, 15}, {5, 5}, {15, 5}, {15, 15}})
	assertSameImage(t, "closed_seam", img, other)

	// outlines of rectangles are closed polylines
	rect := NewImage(20, 20)
	e.PolyRectangle(rect, gc, []image.Rectangle{image.Rect(5, 5, 15, 15)})
	assertSameImage(t, "closed_rect", img, rect)
}

func TestWideLineDashed(t *testing.T) {
	pattern := func(on, off string) string {
		var b strings.Builder
		for x := range 32 {
			switch {
			case x >= 30:
				b.WriteString("0")
			case x%10 < 6:
				b.WriteString(on)
			default:
				b.WriteString(off)
			}
		}
		return b.String()
	}

	e := NewEngine()
	for _, style := range []LineStyle{LineOnOffDash, LineDoubleDash} {
		gc := wideGC(2, CapButt, JoinMiter)
		gc.LineStyle = style
		gc.Dash = []int{6, 4}
		gc.Foreground = 1
		gc.Background = 2

		img := NewImage(32, 10)
		e.PolyLine(img, gc, CoordModeOrigin, []image.Point{{0, 5}, {30, 5}})

		want := pattern("1", "0")
		if style == LineDoubleDash {
			want = pattern("1", "2")
		}
		assert.Equal(t, want, rowString(img, 4), style.String())
		assert.Equal(t, want, rowString(img, 5), style.String())
		assert.Equal(t, strings.Repeat("0", 32), rowString(img, 6), style.String())
	}
}

// TestWideLineDashAroundCorner checks that a dash which reaches a vertex
// continues on the next segment.
func TestWideLineDashAroundCorner(t *testing.T) {
	e := NewEngine()
	gc := wideGC(2, CapButt, JoinMiter)
	gc.LineStyle = LineOnOffDash
	gc.Dash = []int{14, 100}

	img := NewImage(20, 20)
	e.PolyLine(img, gc, CoordModeOrigin, []image.Point{{2, 5}, {12, 5}, {12, 15}})
	solid := NewImage(20, 20)
	e.PolyLine(solid, wideGC(2, CapButt, JoinMiter), CoordModeOrigin,
		[]image.Point{{2, 5}, {12, 5}, {12, 9}})
	assertSameImage(t, "dash_corner", solid, img)
}

func TestWideLinePaintOnce(t *testing.T) {
	zigzag := []image.Point{{5, 5}, {40, 30}, {40, 5}, {5, 30}, {20, 2}, {25, 35}}

	e := NewEngine()
	for _, style := range []LineStyle{LineSolid, LineOnOffDash, LineDoubleDash} {
		for _, cap := range []CapStyle{CapButt, CapRound, CapProjecting} {
			for _, join := range []JoinStyle{JoinMiter, JoinRound, JoinBevel} {
				gc := wideGC(5, cap, join)
				gc.LineStyle = style
				gc.Dash = []int{7, 3}

				d := newCountingDrawable(48, 40)
				e.PolyLine(d, gc, CoordModeOrigin, zigzag)
				assert.Equal(t, 1, d.maxCount(), "%s %s %s", style, cap, join)
			}
		}
	}
}

func TestWideLineDoubleDashForeground(t *testing.T) {
	// where the line crosses itself, the foreground wins
	e := NewEngine()
	gc := wideGC(4, CapButt, JoinMiter)
	gc.LineStyle = LineDoubleDash
	gc.Dash = []int{5, 5}
	gc.Background = 2

	pts := []image.Point{{2, 10}, {30, 10}, {30, 20}, {15, 20}, {15, 0}}
	img := NewImage(32, 24)
	e.PolyLine(img, gc, CoordModeOrigin, pts)

	gc.LineStyle = LineOnOffDash
	fg := NewImage(32, 24)
	e.PolyLine(fg, gc, CoordModeOrigin, pts)
	for i, p := range fg.Pix {
		if p == 1 {
			assert.Equal(t, Pixel(1), img.Pix[i])
		}
	}
}

func TestWideDot(t *testing.T) {
	e := NewEngine()
	dot := func(cap CapStyle) int {
		img := NewImage(12, 12)
		e.PolyLine(img, wideGC(4, cap, JoinMiter), CoordModeOrigin, []image.Point{{5, 5}})
		return painted(img)
	}
	assert.Zero(t, dot(CapButt))
	assert.Equal(t, 16, dot(CapProjecting))
	assert.Greater(t, dot(CapRound), 8)
	assert.Less(t, dot(CapRound), 16)
}

func TestWidePolySegment(t *testing.T) {
	e := NewEngine()
	gc := wideGC(3, CapProjecting, JoinMiter)
	d := newCountingDrawable(30, 30)
	e.PolySegment(d, gc, []Segment{
		{P0: image.Point{X: 5, Y: 5}, P1: image.Point{X: 25, Y: 25}},
		{P0: image.Point{X: 25, Y: 5}, P1: image.Point{X: 5, Y: 25}},
		{P0: image.Point{X: 15, Y: 2}, P1: image.Point{X: 15, Y: 28}},
	})
	assert.Equal(t, 1, d.maxCount())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
