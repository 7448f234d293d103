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

// strokeEmitter receives the caps and joins decided by a strokeMachine.
type strokeEmitter interface {
	emitCap(f face)
	emitJoin(a, b face)
}

// strokeMachine decides where one phase of a stroke gets caps and where
// it gets joins.  A run is a maximal piece of the stroke drawn in the
// same phase.  Solid strokes consist of a single run, dashed strokes
// have one machine for the "on" dashes and, for double dashes, one for
// the "off" dashes.
//
// For closed strokes, the start cap of a run which begins at the start of
// the stroke is deferred until finish.  If the same phase is still active
// at the end of the stroke, the two runs are joined at the seam and no
// caps are drawn there.  Otherwise both ends are capped.
type strokeMachine struct {
	out strokeEmitter

	open bool // a run is in progress

	first        face
	firstPending bool // the cap at first has not been emitted yet
}

func (m *strokeMachine) reset(out strokeEmitter) {
	m.out = out
	m.open = false
	m.firstPending = false
}

// start begins a run at face f.  If atStart is true, the run begins at
// the start of the stroke.
func (m *strokeMachine) start(f face, atStart, closed bool) {
	m.open = true
	if atStart && closed {
		m.first = f
		m.firstPending = true
		return
	}
	m.out.emitCap(f)
}

// vertex is called when the stroke turns a corner while the run is in
// progress.  The end face a of the previous piece is joined to the start
// face b of the next.
func (m *strokeMachine) vertex(a, b face) {
	if !m.open {
		return
	}
	m.out.emitJoin(a, b)
}

// stop ends the current run at face f.
func (m *strokeMachine) stop(f face) {
	if !m.open {
		return
	}
	m.out.emitCap(f)
	m.open = false
}

// finish is called at the end of the stroke.  The face last is the end
// of the stroke.
func (m *strokeMachine) finish(last face, closed bool) {
	switch {
	case m.open && closed && m.firstPending:
		m.out.emitJoin(last, m.first)
		m.firstPending = false
	case m.open:
		m.out.emitCap(last)
	}
	m.open = false
	if m.firstPending {
		m.out.emitCap(m.first)
		m.firstPending = false
	}
}

// strokeOutput is the strokeEmitter used for drawing.  The spans of caps
// and joins are appended to a SpanGroup.
type strokeOutput struct {
	shapes   *strokeShapes
	group    *SpanGroup
	subtract *SpanGroup // for the foreground of double dashes, else nil

	cap        CapStyle
	join       JoinStyle
	miterLimit float64

	spans SpanList
}

func (o *strokeOutput) emitCap(f face) {
	o.spans = o.shapes.capSpans(o.spans[:0], f, o.cap)
	o.group.Append(o.spans, o.subtract)
}

func (o *strokeOutput) emitJoin(a, b face) {
	o.spans = o.shapes.joinSpans(o.spans[:0], a, b, o.join, o.miterLimit)
	o.group.Append(o.spans, o.subtract)
}

// emitBody adds the body of a straight piece between the faces a and b.
func (o *strokeOutput) emitBody(a, b face) {
	o.spans = o.shapes.body(o.spans[:0], a, b)
	o.group.Append(o.spans, o.subtract)
}
