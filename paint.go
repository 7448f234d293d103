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

// Paint writes the spans into dst using the fill style of gc, with the
// foreground as the solid colour.  Spans are clipped to the drawable.
// If sorted is true, the list must be sorted by Y; this allows lists
// outside the drawable to be skipped without looking at every span.
func Paint(dst Drawable, gc *GC, spans SpanList, sorted bool) {
	c := newCompositor(dst, gc)
	c.paint(spans, gc.Foreground, sorted)
}

// compositor is the only code which writes to a Drawable.
type compositor struct {
	dst    Drawable
	fast   spanSetter // nil if dst has no SetSpan method
	gc     *GC
	style  FillStyle // gc.FillStyle, downgraded to solid if the pattern is missing
	width  int
	height int
}

func newCompositor(dst Drawable, gc *GC) *compositor {
	w, h := dst.Size()
	c := &compositor{
		dst:    dst,
		gc:     gc,
		style:  gc.FillStyle,
		width:  w,
		height: h,
	}
	c.fast, _ = dst.(spanSetter)

	switch c.style {
	case FillTiled:
		if gc.Tile == nil || gc.Tile.Width <= 0 || gc.Tile.Height <= 0 {
			c.style = FillSolid
		}
	case FillStippled, FillOpaqueStippled:
		if gc.Stipple == nil || gc.Stipple.Width <= 0 || gc.Stipple.Height <= 0 {
			c.style = FillSolid
		}
	}
	return c
}

// paint writes all spans.  The pixel argument is the colour of the solid
// and stippled styles; callers pass the background for the odd dashes of
// double-dashed lines.
func (c *compositor) paint(spans SpanList, pixel Pixel, sorted bool) {
	if len(spans) == 0 {
		return
	}
	if sorted && (spans[0].Y >= c.height || spans[len(spans)-1].Y < 0) {
		return
	}

	for _, s := range spans {
		if s.Y < 0 || s.Y >= c.height || s.Width <= 0 {
			continue
		}
		x0 := max(s.X, 0)
		x1 := min(s.X+s.Width, c.width)
		if x0 >= x1 {
			continue
		}
		c.fillRun(s.Y, x0, x1, pixel)
	}
}

// fillRun writes the pixels x0, ..., x1-1 on row y.  The run is already
// clipped to the drawable.
func (c *compositor) fillRun(y, x0, x1 int, pixel Pixel) {
	gc := c.gc
	switch c.style {
	case FillSolid:
		if c.fast != nil {
			c.fast.SetSpan(y, x0, x1, pixel)
			return
		}
		for x := x0; x < x1; x++ {
			c.dst.Set(x, y, pixel)
		}

	case FillTiled:
		tile := gc.Tile
		ty := wrap(y-gc.PatternOrigin.Y, tile.Height)
		row := tile.Pix[ty*tile.Width : (ty+1)*tile.Width]
		tx := wrap(x0-gc.PatternOrigin.X, tile.Width)
		for x := x0; x < x1; x++ {
			c.dst.Set(x, y, row[tx])
			tx++
			if tx == tile.Width {
				tx = 0
			}
		}

	case FillStippled, FillOpaqueStippled:
		st := gc.Stipple
		sy := wrap(y-gc.PatternOrigin.Y, st.Height)
		row := st.Bits[sy*st.Width : (sy+1)*st.Width]
		sx := wrap(x0-gc.PatternOrigin.X, st.Width)
		opaque := c.style == FillOpaqueStippled
		for x := x0; x < x1; x++ {
			switch {
			case row[sx] && opaque:
				c.dst.Set(x, y, gc.Foreground)
			case row[sx]:
				c.dst.Set(x, y, pixel)
			case opaque:
				c.dst.Set(x, y, gc.Background)
			}
			sx++
			if sx == st.Width {
				sx = 0
			}
		}
	}
}

// wrap reduces v into the range [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
