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

func TestNormalizeDash(t *testing.T) {
	cases := []struct {
		in, want []int
	}{
		{nil, []int{1, 1}},
		{[]int{3}, []int{3, 3}},
		{[]int{4, 2}, []int{4, 2}},
		{[]int{0, 2, 5}, []int{1, 2, 5, 1, 2, 5}},
		{[]int{-1, 7}, []int{1, 7}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalizeDash(nil, c.in), "%v", c.in)
	}
}

func TestDashCursorReset(t *testing.T) {
	pattern := []int{3, 2}
	var d dashCursor

	d.reset(pattern, 0)
	assert.True(t, d.on())
	assert.Equal(t, 3.0, d.remaining())

	d.reset(pattern, 4)
	assert.False(t, d.on())
	assert.Equal(t, 1.0, d.remaining())

	// offsets are taken modulo the period
	d.reset(pattern, -1)
	assert.False(t, d.on())
	assert.Equal(t, 1.0, d.remaining())

	d.reset(pattern, 12)
	assert.True(t, d.on())
	assert.Equal(t, 1.0, d.remaining())
}

func TestDashCursorAdvance(t *testing.T) {
	var d dashCursor
	d.reset([]int{3, 2}, 0)

	// the end of a dash is the start of the next one
	d.advance(3)
	assert.False(t, d.on())
	assert.Equal(t, 2.0, d.remaining())

	d.advance(0.5)
	assert.Equal(t, 1.5, d.remaining())

	d.next()
	assert.True(t, d.on())
	assert.Equal(t, 3.0, d.remaining())
}

func TestDashCursorCycle(t *testing.T) {
	pattern := []int{3, 1, 2, 4}
	for offset := range 10 {
		var d dashCursor
		d.reset(pattern, offset)
		start := d

		// pixel by pixel
		for range 10 {
			d.advance(1)
		}
		assert.Equal(t, start.index, d.index, "offset %d", offset)
		assert.Equal(t, start.offset, d.offset, "offset %d", offset)

		// several periods at once
		d.advance(30)
		assert.Equal(t, start.index, d.index, "offset %d", offset)
		assert.Equal(t, start.offset, d.offset, "offset %d", offset)

		// partial period
		d.advance(7)
		var want dashCursor
		want.reset(pattern, offset+7)
		assert.Equal(t, want.index, d.index, "offset %d", offset)
		assert.Equal(t, want.offset, d.offset, "offset %d", offset)
	}
}
