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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/scan/testcases"
)

// BenchmarkFillO fills an "O" shape with the even-odd rule.
func BenchmarkFillO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			e := NewEngine()
			gc := NewGC()
			gc.FillRule = EvenOdd
			dst := NewImage(size, size)

			c := float64(size) / 2
			p := &path.Data{}
			addCircle(p, c, c, float64(size)*0.45, false)
			addCircle(p, c, c, float64(size)*0.30, true)

			b.ReportAllocs()
			for b.Loop() {
				e.FillPath(dst, gc, p, matrix.Identity)
			}
		})
	}
}

// BenchmarkVectorO draws the same shape with x/image/vector, for
// comparison.  The vector package computes anti-aliased coverage.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			c := float32(size) / 2
			outer := float32(size) * 0.45
			inner := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, c, c, outer, false)
				addCircleToVector(r, c, c, inner, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkFillArc fills a full ellipse, which needs no curve
// flattening.
func BenchmarkFillArc(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			e := NewEngine()
			gc := NewGC()
			dst := NewImage(size, size)
			arcs := []Arc{{X: size / 20, Y: size / 10, Width: size * 9 / 10, Height: size * 8 / 10, Angle2: FullCircle}}

			b.ReportAllocs()
			for b.Loop() {
				e.FillArcs(dst, gc, arcs)
			}
		})
	}
}

// BenchmarkWideArc strokes an ellipse with and without the arc cache.
func BenchmarkWideArc(b *testing.B) {
	arcs := []Arc{{X: 10, Y: 20, Width: 180, Height: 160, Angle1: 30 * 64, Angle2: 300 * 64}}
	for _, cached := range []bool{true, false} {
		b.Run(fmt.Sprintf("cached=%t", cached), func(b *testing.B) {
			e := NewEngine()
			if !cached {
				e.ArcCache = nil
			}
			gc := NewGC()
			gc.LineWidth = 9
			gc.Cap = CapRound
			dst := NewImage(200, 200)

			b.ReportAllocs()
			for b.Loop() {
				e.PolyArc(dst, gc, arcs)
			}
		})
	}
}

// BenchmarkDoubleDash strokes a double-dashed ellipse with many short
// dashes, where each dash is subtracted from the background.
func BenchmarkDoubleDash(b *testing.B) {
	arcs := []Arc{{X: 10, Y: 20, Width: 180, Height: 160, Angle2: FullCircle}}
	e := NewEngine()
	gc := NewGC()
	gc.LineWidth = 7
	gc.LineStyle = LineDoubleDash
	gc.Dash = []int{2, 1}
	gc.Background = 2
	dst := NewImage(200, 200)

	b.ReportAllocs()
	for b.Loop() {
		e.PolyArc(dst, gc, arcs)
	}
}

// BenchmarkScenes renders every scene with a shared engine.
func BenchmarkScenes(b *testing.B) {
	e := NewEngine()
	var all []testcases.TestCase
	for _, cases := range testcases.All {
		all = append(all, cases...)
	}
	images := make([]*Image, len(all))
	for i, tc := range all {
		images[i] = NewImage(tc.Width, tc.Height)
	}

	b.ReportAllocs()
	for b.Loop() {
		for i, tc := range all {
			RenderCase(e, images[i], tc)
		}
	}
}

// addCircle appends a circle made of four cubic Bézier curves to p.
func addCircle(p *path.Data, cx, cy, r float64, clockwise bool) {
	const k = 0.5522847498
	kr := k * r
	if clockwise {
		p.MoveTo(v2(cx, cy-r)).
			CubeTo(v2(cx-kr, cy-r), v2(cx-r, cy-kr), v2(cx-r, cy)).
			CubeTo(v2(cx-r, cy+kr), v2(cx-kr, cy+r), v2(cx, cy+r)).
			CubeTo(v2(cx+kr, cy+r), v2(cx+r, cy+kr), v2(cx+r, cy)).
			CubeTo(v2(cx+r, cy-kr), v2(cx+kr, cy-r), v2(cx, cy-r)).
			Close()
	} else {
		p.MoveTo(v2(cx, cy-r)).
			CubeTo(v2(cx+kr, cy-r), v2(cx+r, cy-kr), v2(cx+r, cy)).
			CubeTo(v2(cx+r, cy+kr), v2(cx+kr, cy+r), v2(cx, cy+r)).
			CubeTo(v2(cx-kr, cy+r), v2(cx-r, cy+kr), v2(cx-r, cy)).
			CubeTo(v2(cx-r, cy-kr), v2(cx-kr, cy-r), v2(cx, cy-r)).
			Close()
	}
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic
// Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	if clockwise {
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
