// Command export writes the drawing scenes to JSON, for use by reference
// renderers outside this module, for example a test harness driving the
// X server.  Nothing in this module reads the file.
package main

import (
	"encoding/json"
	"flag"
	"image"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/scan/testcases"
)

func main() {
	outFile := flag.String("o", "testdata/testcases.json", "output file")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outFile), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Shape      string        `json:"shape"`
	Points     [][2]int      `json:"points,omitempty"`
	Arcs       [][6]int      `json:"arcs,omitempty"`
	Path       []jsonSegment `json:"path"`
	Op         string        `json:"op"`
	FillRule   string        `json:"fill_rule,omitempty"`
	ArcMode    string        `json:"arc_mode,omitempty"`
	LineWidth  int           `json:"line_width,omitempty"`
	LineCap    string        `json:"line_cap,omitempty"`
	LineJoin   string        `json:"line_join,omitempty"`
	MiterLimit float64       `json:"miter_limit,omitempty"`
	Dash       []int         `json:"dash,omitempty"`
	DashOffset int           `json:"dash_offset,omitempty"`
	DoubleDash bool          `json:"double_dash,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Shape.Path().Iter()),
	}

	switch s := tc.Shape.(type) {
	case testcases.Polygon:
		jtc.Shape = "polygon"
		jtc.Points = pointsToJSON(s.Points)
	case testcases.Polyline:
		jtc.Shape = "polyline"
		jtc.Points = pointsToJSON(s.Points)
	case testcases.Arcs:
		jtc.Shape = "arcs"
		for _, a := range s {
			jtc.Arcs = append(jtc.Arcs, [6]int{a.X, a.Y, a.W, a.H, a.Angle1, a.Angle2})
		}
	case testcases.Curve:
		jtc.Shape = "path"
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		if op.Rule == testcases.EvenOdd {
			jtc.FillRule = "evenodd"
		} else {
			jtc.FillRule = "nonzero"
		}
		if _, isArc := tc.Shape.(testcases.Arcs); isArc {
			jtc.ArcMode = "pieslice"
			if op.Chord {
				jtc.ArcMode = "chord"
			}
		}
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
		jtc.LineJoin = op.Join.String()
		jtc.MiterLimit = op.MiterLimit
		jtc.Dash = op.Dash
		jtc.DashOffset = op.DashOffset
		jtc.DoubleDash = op.Double
	}
	return jtc
}

func pointsToJSON(pts []image.Point) [][2]int {
	res := make([][2]int, len(pts))
	for i, p := range pts {
		res[i] = [2]int{p.X, p.Y}
	}
	return res
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
