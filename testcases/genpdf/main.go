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

// Command genpdf draws every scene into a one-page PDF file and converts
// the file to PNG with Ghostscript.  The resulting images use the same
// grey levels as the output of genpng, so that the two can be compared
// pixel by pixel.  The gaps of double-dashed lines are approximated by
// an undashed stroke below the dashes.
//
// Usage:
//
//	genpdf [-o dir] [-gs path] [-only category] [-keep]
package main

import (
	"errors"
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/scan/testcases"
)

// grey levels of the three scene pixel values
var (
	levelBackground = color.DeviceGray(0)
	levelForeground = color.DeviceGray(1)
	levelGap        = color.DeviceGray(128.0 / 255)
)

type converter struct {
	outDir string
	gs     string
	keep   bool
}

func main() {
	c := &converter{}
	flag.StringVar(&c.outDir, "o", "testdata/reference", "output directory")
	flag.StringVar(&c.gs, "gs", "gs", "Ghostscript executable")
	flag.BoolVar(&c.keep, "keep", true, "keep the intermediate PDF files")
	only := flag.String("only", "", "only draw the scenes of this category")
	flag.Parse()

	if err := os.MkdirAll(c.outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var errs []error
	n := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if *only != "" && category != *only {
			continue
		}
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := c.convert(name, tc); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				continue
			}
			n++
		}
	}

	fmt.Printf("%d reference images written to %s\n", n, c.outDir)
	if err := errors.Join(errs...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// convert writes the PDF file for one scene and renders it.
func (c *converter) convert(name string, tc testcases.TestCase) error {
	pdfName := filepath.Join(c.outDir, name+".pdf")
	pngName := filepath.Join(c.outDir, name+".png")

	if err := drawScene(pdfName, tc); err != nil {
		return err
	}
	cmd := exec.Command(c.gs, "-q", "-sDEVICE=pnggray", "-r72",
		"-dGraphicsAlphaBits=1", "-o", pngName, pdfName)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ghostscript: %w\n%s", err, out)
	}
	if !c.keep {
		return os.Remove(pdfName)
	}
	return nil
}

// drawScene writes a PDF page of the size of the scene, with one point
// per pixel.
func drawScene(fname string, tc testcases.TestCase) error {
	w, h := float64(tc.Width), float64(tc.Height)
	page, err := document.CreateSinglePage(fname, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(levelBackground)
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// Flip the y-axis, and move pixel centres to integer coordinates.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0.5, h - 0.5})

	switch op := tc.Op.(type) {
	case testcases.Fill:
		outline := tc.Shape.Path()
		if arcs, ok := tc.Shape.(testcases.Arcs); ok {
			outline = sectors(arcs, op.Chord)
		}
		page.SetFillColor(levelForeground)
		emit(page, outline)
		if op.Rule == testcases.EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}

	case testcases.Stroke:
		page.SetLineWidth(float64(op.Width))
		page.SetLineCap(op.Cap)
		page.SetLineJoin(op.Join)
		page.SetMiterLimit(op.MiterLimit)
		outline := tc.Shape.Path()

		if op.Double && len(op.Dash) > 0 {
			page.SetStrokeColor(levelGap)
			emit(page, outline)
			page.Stroke()
		}
		if len(op.Dash) > 0 {
			pattern := make([]float64, len(op.Dash))
			for i, d := range op.Dash {
				pattern[i] = float64(d)
			}
			page.SetLineDash(pattern, float64(op.DashOffset))
		}
		page.SetStrokeColor(levelForeground)
		emit(page, outline)
		page.Stroke()
	}

	return page.Close()
}

// emit adds a path to the current page, with quadratic segments raised
// to cubic ones.
func emit(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// sectors returns the outlines of filled arcs.  Partial pie slices are
// closed through the centre, chords and full ellipses directly.
func sectors(arcs testcases.Arcs, chord bool) *path.Data {
	res := &path.Data{}
	for _, a := range arcs {
		one := testcases.Arcs{a}.Path()
		res.Cmds = append(res.Cmds, one.Cmds...)
		res.Coords = append(res.Coords, one.Coords...)

		full := a.Angle2 >= 360*64 || a.Angle2 <= -360*64
		if !chord && !full {
			centre := vec.Vec2{X: float64(a.X) + float64(a.W)/2, Y: float64(a.Y) + float64(a.H)/2}
			res.LineTo(centre)
		}
		res.Close()
	}
	return res
}
