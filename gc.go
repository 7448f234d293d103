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
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/pdf/graphics"
)

// FillStyle selects how the pixels of a span are computed.
type FillStyle int

// These are the supported fill styles.
const (
	FillSolid          FillStyle = iota // foreground everywhere
	FillTiled                           // pixels taken from the tile
	FillStippled                        // foreground where the stipple is set
	FillOpaqueStippled                  // foreground or background by stipple
)

func (s FillStyle) String() string {
	switch s {
	case FillSolid:
		return "solid"
	case FillTiled:
		return "tiled"
	case FillStippled:
		return "stippled"
	case FillOpaqueStippled:
		return "opaque_stippled"
	}
	return fmt.Sprintf("FillStyle(%d)", int(s))
}

// FillRule decides which points are inside a self-intersecting polygon.
type FillRule int

// These are the supported fill rules.
const (
	EvenOdd FillRule = iota
	Winding
)

func (r FillRule) String() string {
	switch r {
	case EvenOdd:
		return "evenodd"
	case Winding:
		return "winding"
	}
	return fmt.Sprintf("FillRule(%d)", int(r))
}

// LineStyle selects solid or dashed lines.
type LineStyle int

// These are the supported line styles.
const (
	LineSolid      LineStyle = iota
	LineOnOffDash            // even dashes drawn, odd dashes skipped
	LineDoubleDash           // odd dashes drawn with the background
)

func (s LineStyle) String() string {
	switch s {
	case LineSolid:
		return "solid"
	case LineOnOffDash:
		return "onoffdash"
	case LineDoubleDash:
		return "doubledash"
	}
	return fmt.Sprintf("LineStyle(%d)", int(s))
}

// CapStyle describes the ends of lines.
type CapStyle int

// These are the supported cap styles.
const (
	// CapNotLast is like CapButt, but for zero-width lines the final
	// point of the line is not drawn.
	CapNotLast CapStyle = iota

	// CapButt ends the line squarely at the end point.
	CapButt

	// CapRound ends the line with a half disk centred at the end point.
	CapRound

	// CapProjecting extends the line by half the line width.
	CapProjecting

	// CapTriangular ends the line with a triangle reaching half the line
	// width beyond the end point.
	CapTriangular
)

func (c CapStyle) String() string {
	switch c {
	case CapNotLast:
		return "notlast"
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapProjecting:
		return "projecting"
	case CapTriangular:
		return "triangular"
	}
	return fmt.Sprintf("CapStyle(%d)", int(c))
}

// JoinStyle describes the corners of wide polylines.
type JoinStyle int

// These are the supported join styles.
const (
	JoinMiter JoinStyle = iota
	JoinRound
	JoinBevel
	JoinTriangular // bevel plus a vertex on the outer bisector
)

func (j JoinStyle) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	case JoinTriangular:
		return "triangular"
	}
	return fmt.Sprintf("JoinStyle(%d)", int(j))
}

// ArcMode selects how filled arcs are closed.
type ArcMode int

// These are the supported arc modes.
const (
	ArcChord    ArcMode = iota // closed by the chord between the end points
	ArcPieSlice                // closed by two radii
)

func (m ArcMode) String() string {
	switch m {
	case ArcChord:
		return "chord"
	case ArcPieSlice:
		return "pieslice"
	}
	return fmt.Sprintf("ArcMode(%d)", int(m))
}

// ErrBadValue is wrapped by all errors returned from [GC.Validate].
var ErrBadValue = errors.New("bad value")

// GC is the graphics context of a drawing call.  The engine only reads
// the GC; a GC may be shared between calls.
type GC struct {
	// Foreground is the pixel used for filling and for the even dashes.
	Foreground Pixel

	// Background is used for the odd dashes of double-dashed lines and for
	// the clear stipple bits of the opaque-stippled fill style.
	Background Pixel

	// FillStyle selects how span pixels are computed.
	FillStyle FillStyle

	// Stipple is the pattern for the stippled fill styles.
	// If Stipple is nil, the stippled styles paint like FillSolid.
	Stipple *Bitmap

	// Tile is the pattern for the tiled fill style.
	// If Tile is nil, FillTiled paints like FillSolid.
	Tile *Image

	// PatternOrigin is the device position of the top-left corner of the
	// stipple and tile patterns.
	PatternOrigin image.Point

	// FillRule is used by polygons and paths with self-intersections.
	FillRule FillRule

	// LineWidth is the width of lines and arcs in pixels.
	// Zero selects the fast zero-width algorithms.
	LineWidth int

	// LineStyle selects solid or dashed lines.
	LineStyle LineStyle

	// Cap is the style of line ends.
	Cap CapStyle

	// Join is the style of polyline corners.
	Join JoinStyle

	// MiterLimit is the maximal ratio between the miter length and half
	// the line width.  Longer miters are drawn as bevels.
	// Must be >= 1.
	MiterLimit float64

	// Dash holds the lengths of the dashes in pixels, starting with an
	// "on" dash.  Entries below one are treated as one.  An odd number of
	// entries is repeated once to give an even pattern.
	Dash []int

	// DashOffset is the position within the dash pattern at which lines
	// start.
	DashOffset int

	// ArcMode selects how filled arcs are closed.
	ArcMode ArcMode
}

// NewGC returns a graphics context with the default settings:
// foreground 1 on background 0, solid fill, zero-width solid lines with
// butt caps and miter joins, and a 4-on-4-off dash pattern.
func NewGC() *GC {
	return &GC{
		Foreground: 1,
		Background: 0,
		FillStyle:  FillSolid,
		FillRule:   EvenOdd,
		LineStyle:  LineSolid,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: defaultMiterLimit,
		Dash:       []int{4, 4},
		ArcMode:    ArcPieSlice,
	}
}

// Validate checks the graphics context for values which the engine
// silently repairs while drawing.
func (gc *GC) Validate() error {
	if gc.LineWidth < 0 {
		return fmt.Errorf("line width %d: %w", gc.LineWidth, ErrBadValue)
	}
	if gc.MiterLimit < 1 {
		return fmt.Errorf("miter limit %g: %w", gc.MiterLimit, ErrBadValue)
	}
	if gc.LineStyle != LineSolid {
		if len(gc.Dash) == 0 {
			return fmt.Errorf("empty dash pattern: %w", ErrBadValue)
		}
		for i, d := range gc.Dash {
			if d <= 0 {
				return fmt.Errorf("dash[%d] = %d: %w", i, d, ErrBadValue)
			}
		}
	}
	switch gc.FillStyle {
	case FillTiled:
		if gc.Tile == nil || gc.Tile.Width <= 0 || gc.Tile.Height <= 0 {
			return fmt.Errorf("missing tile: %w", ErrBadValue)
		}
	case FillStippled, FillOpaqueStippled:
		if gc.Stipple == nil || gc.Stipple.Width <= 0 || gc.Stipple.Height <= 0 {
			return fmt.Errorf("missing stipple: %w", ErrBadValue)
		}
	}
	return nil
}

// CapFromPDF converts a PDF line cap style.
// The PDF square cap corresponds to [CapProjecting].
func CapFromPDF(c graphics.LineCapStyle) CapStyle {
	switch c {
	case graphics.LineCapRound:
		return CapRound
	case graphics.LineCapSquare:
		return CapProjecting
	default:
		return CapButt
	}
}

// JoinFromPDF converts a PDF line join style.
func JoinFromPDF(j graphics.LineJoinStyle) JoinStyle {
	switch j {
	case graphics.LineJoinRound:
		return JoinRound
	case graphics.LineJoinBevel:
		return JoinBevel
	default:
		return JoinMiter
	}
}
