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

// Command genpng renders all drawing scenes into PNG files, for visual
// inspection.  Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/scan"
	"seehuhn.de/go/scan/testcases"
)

var palette = color.Palette{
	color.Gray{Y: 0},   // scan.SceneBackground
	color.Gray{Y: 255}, // scan.SceneForeground
	color.Gray{Y: 128}, // scan.SceneGap
}

func main() {
	outDir := flag.String("o", "testdata/render", "output directory")
	verbose := flag.Bool("v", false, "log engine debug messages")
	flag.Parse()

	if *verbose {
		scan.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	e := scan.NewEngine()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			img := image.NewPaletted(image.Rect(0, 0, tc.Width, tc.Height), palette)
			scan.RenderCase(e, scan.Paletted{Paletted: img}, tc)

			if err := writePNG(filepath.Join(*outDir, name+".png"), img); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}

	hits, misses := e.ArcCache.Stats()
	fmt.Printf("arc cache: %d hits, %d misses\n", hits, misses)
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
