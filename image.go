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

import "image"

// Pixel is an opaque device pixel value.  The engine never interprets
// pixel values, it only copies them into a Drawable.
type Pixel uint32

// Drawable is a caller-owned pixel raster.  The engine only writes to a
// Drawable and never reads pixels back.
//
// Coordinates passed to Set are always inside the rectangle
// [0, width) x [0, height).
type Drawable interface {
	Size() (width, height int)
	Set(x, y int, p Pixel)
}

// spanSetter is implemented by drawables which can fill a horizontal run
// faster than pixel by pixel.  Pixels x0, ..., x1-1 on row y are set.
type spanSetter interface {
	SetSpan(y, x0, x1 int, p Pixel)
}

// Image is a simple in-memory Drawable.  It is also used as the tile for
// the tiled fill style.
type Image struct {
	Width, Height int
	Pix           []Pixel // row-major, len(Pix) == Width*Height
}

// NewImage allocates a zeroed image of the given size.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}
}

// Size implements the [Drawable] interface.
func (m *Image) Size() (int, int) {
	return m.Width, m.Height
}

// Set implements the [Drawable] interface.
func (m *Image) Set(x, y int, p Pixel) {
	m.Pix[y*m.Width+x] = p
}

// SetSpan sets the pixels x0, ..., x1-1 on row y.
func (m *Image) SetSpan(y, x0, x1 int, p Pixel) {
	row := m.Pix[y*m.Width : (y+1)*m.Width]
	for i := x0; i < x1; i++ {
		row[i] = p
	}
}

// At returns the pixel at (x, y).
func (m *Image) At(x, y int) Pixel {
	return m.Pix[y*m.Width+x]
}

// Fill sets every pixel of the image to p.
func (m *Image) Fill(p Pixel) {
	for i := range m.Pix {
		m.Pix[i] = p
	}
}

// Paletted adapts an [*image.Paletted] to the [Drawable] interface.
// Pixel values are used as palette indices and are truncated to 8 bits.
// Coordinates are relative to the image bounds.
type Paletted struct {
	*image.Paletted
}

// Size implements the [Drawable] interface.
func (p Paletted) Size() (int, int) {
	b := p.Bounds()
	return b.Dx(), b.Dy()
}

// Set implements the [Drawable] interface.
func (p Paletted) Set(x, y int, v Pixel) {
	p.Pix[y*p.Stride+x] = uint8(v)
}

// SetSpan sets the pixels x0, ..., x1-1 on row y.
func (p Paletted) SetSpan(y, x0, x1 int, v Pixel) {
	row := p.Pix[y*p.Stride:]
	for i := x0; i < x1; i++ {
		row[i] = uint8(v)
	}
}

// Bitmap is a boolean pattern, used as the stipple of a graphics context.
type Bitmap struct {
	Width, Height int
	Bits          []bool // row-major, len(Bits) == Width*Height
}

// NewBitmap allocates a cleared bitmap of the given size.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Bits:   make([]bool, width*height),
	}
}

// Set changes the bit at (x, y).
func (b *Bitmap) Set(x, y int, on bool) {
	b.Bits[y*b.Width+x] = on
}

// At reports whether the bit at (x, y) is set.
func (b *Bitmap) At(x, y int) bool {
	return b.Bits[y*b.Width+x]
}
