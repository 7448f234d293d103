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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaintSolid(t *testing.T) {
	spans := SpanList{
		{Y: -1, X: 0, Width: 5}, // above
		{Y: 0, X: -2, Width: 4}, // clipped left
		{Y: 1, X: 3, Width: 10}, // clipped right
		{Y: 2, X: 1, Width: 0},  // empty
		{Y: 4, X: 0, Width: 5},  // below
	}
	gc := NewGC()
	gc.Foreground = 5

	img := NewImage(6, 4)
	Paint(img, gc, spans, true)
	assert.Equal(t, "550000", rowString(img, 0))
	assert.Equal(t, "000555", rowString(img, 1))
	assert.Equal(t, "000000", rowString(img, 2))
	assert.Equal(t, "000000", rowString(img, 3))

	// the per-pixel path gives the same result
	d := newCountingDrawable(6, 4)
	Paint(d, gc, spans, false)
	for i, n := range d.count {
		if img.Pix[i] != 0 {
			assert.Equal(t, 1, n)
			assert.Equal(t, Pixel(5), d.last[i])
		} else {
			assert.Zero(t, n)
		}
	}
}

func TestPaintSortedSkip(t *testing.T) {
	d := newCountingDrawable(4, 4)
	Paint(d, NewGC(), SpanList{{Y: 10, X: 0, Width: 4}, {Y: 11, X: 0, Width: 4}}, true)
	Paint(d, NewGC(), SpanList{{Y: -5, X: 0, Width: 4}}, true)
	assert.Zero(t, d.maxCount())
}

func TestPaintStippled(t *testing.T) {
	stipple := NewBitmap(3, 2)
	stipple.Set(0, 0, true)
	stipple.Set(2, 1, true)

	type testCase struct {
		name   string
		style  FillStyle
		origin image.Point
		rows   [2]string
	}
	cases := []testCase{
		{"stippled", FillStippled, image.Point{}, [2]string{"1991991", "9919919"}},
		{"stippled_origin", FillStippled, image.Point{X: 1, Y: 1}, [2]string{"1991991", "9199199"}},
		{"opaque", FillOpaqueStippled, image.Point{}, [2]string{"1221221", "2212212"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gc := NewGC()
			gc.Foreground = 1
			gc.Background = 2
			gc.FillStyle = tc.style
			gc.Stipple = stipple
			gc.PatternOrigin = tc.origin

			img := NewImage(7, 2)
			img.Fill(9)
			Paint(img, gc, SpanList{{Y: 0, X: 0, Width: 7}, {Y: 1, X: 0, Width: 7}}, true)
			assert.Equal(t, tc.rows[0], rowString(img, 0))
			assert.Equal(t, tc.rows[1], rowString(img, 1))
		})
	}
}

func TestPaintTiled(t *testing.T) {
	tile := NewImage(3, 1)
	copy(tile.Pix, []Pixel{5, 6, 7})

	gc := NewGC()
	gc.FillStyle = FillTiled
	gc.Tile = tile
	gc.PatternOrigin = image.Point{X: -1, Y: 3}

	img := NewImage(8, 2)
	Paint(img, gc, SpanList{{Y: 0, X: 0, Width: 8}, {Y: 1, X: 2, Width: 3}}, true)
	assert.Equal(t, "67567567", rowString(img, 0))
	assert.Equal(t, "00567000", rowString(img, 1))
}

func TestPaintMissingPattern(t *testing.T) {
	for _, style := range []FillStyle{FillTiled, FillStippled, FillOpaqueStippled} {
		t.Run(style.String(), func(t *testing.T) {
			gc := NewGC()
			gc.FillStyle = style
			gc.Foreground = 3
			assert.Error(t, gc.Validate())

			img := NewImage(4, 1)
			Paint(img, gc, SpanList{{Y: 0, X: 1, Width: 2}}, true)
			assert.Equal(t, "0330", rowString(img, 0))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 2, wrap(5, 3))
	assert.Equal(t, 0, wrap(-3, 3))
	assert.Equal(t, 2, wrap(-1, 3))
	assert.Equal(t, 0, wrap(0, 7))
}
