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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/scan/testcases"
)

func countCmds(p *path.Data, cmd path.Command) int {
	n := 0
	for _, c := range p.Cmds {
		if c == cmd {
			n++
		}
	}
	return n
}

func TestSectors(t *testing.T) {
	type testCase struct {
		name  string
		arc   testcases.Arc
		chord bool
		lines int // lines added to the arc outline
	}
	cases := []testCase{
		{"pie", testcases.Arc{X: 4, Y: 4, W: 40, H: 30, Angle1: 30 * 64, Angle2: 100 * 64}, false, 1},
		{"chord", testcases.Arc{X: 4, Y: 4, W: 40, H: 30, Angle1: 30 * 64, Angle2: 100 * 64}, true, 0},
		{"full_pie", testcases.Arc{X: 4, Y: 4, W: 40, H: 30, Angle2: 360 * 64}, false, 0},
		{"full_reverse", testcases.Arc{X: 4, Y: 4, W: 40, H: 30, Angle2: -360 * 64}, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outline := testcases.Arcs{tc.arc}.Path()
			got := sectors(testcases.Arcs{tc.arc}, tc.chord)
			assert.Equal(t, countCmds(outline, path.CmdLineTo)+tc.lines, countCmds(got, path.CmdLineTo))
			assert.Equal(t, 1, countCmds(got, path.CmdClose))
		})
	}
}

func TestDrawScene(t *testing.T) {
	dir := t.TempDir()
	for _, category := range []string{"arc", "dash"} {
		for _, tc := range testcases.All[category] {
			fname := filepath.Join(dir, category+"_"+tc.Name+".pdf")
			require.NoError(t, drawScene(fname, tc), tc.Name)

			data, err := os.ReadFile(fname)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), tc.Name)
		}
	}
}
