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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanListAdd(t *testing.T) {
	var l SpanList
	l = l.add(0, 5, 3)
	l = l.add(1, 2, 0)  // empty
	l = l.add(1, 2, -4) // negative
	l = l.addRange(2, 7, 7)
	l = l.addRange(3, 1, 4)

	assert.Equal(t, SpanList{{Y: 0, X: 5, Width: 3}, {Y: 3, X: 1, Width: 3}}, l)
	assert.Equal(t, 8, l[0].End())
	assert.Equal(t, 6, l.Area())
	assert.True(t, l.IsSorted())

	yMin, yMax, ok := l.YRange()
	assert.True(t, ok)
	assert.Equal(t, 0, yMin)
	assert.Equal(t, 3, yMax)
}

func TestSpanListEmpty(t *testing.T) {
	var l SpanList
	_, _, ok := l.YRange()
	assert.False(t, ok)
	assert.Zero(t, l.Area())
	assert.True(t, l.IsSorted())
}

func TestSpanListUnsorted(t *testing.T) {
	l := SpanList{{Y: 4, X: 0, Width: 1}, {Y: 2, X: 0, Width: 1}}
	assert.False(t, l.IsSorted())
}
