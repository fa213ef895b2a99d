// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/monobit/raster"

// OpKind identifies the type of a batched pixel operation.
type OpKind uint8

const (
	OpSetDraw  OpKind = iota // Write the draw bit, keep alpha
	OpSetPixel               // Write draw and alpha
	OpPlot                   // Write every Change.New in Changes
	OpFill                   // Set every pixel to Value
	OpInvert                 // Flip every draw bit, keep alpha
)

var opKindNames = [...]string{
	OpSetDraw:  "SetDraw",
	OpSetPixel: "SetPixel",
	OpPlot:     "Plot",
	OpFill:     "Fill",
	OpInvert:   "Invert",
}

// String returns the name of the op kind.
func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "Unknown"
}

// Op is one deferred pixel mutation. Which fields are used depends on Kind:
// X, Y and Value for the single-pixel kinds, Changes for OpPlot, Value for
// OpFill.
type Op struct {
	Kind    OpKind
	X, Y    int
	Value   raster.Value
	Changes []raster.Change
}

// Apply executes op against p.
func Apply(p raster.Plane, op Op) {
	switch op.Kind {
	case OpSetDraw:
		_, a := p.At(op.X, op.Y)
		p.Set(op.X, op.Y, op.Value.Draw, a)
	case OpSetPixel:
		p.Set(op.X, op.Y, op.Value.Draw, op.Value.Alpha)
	case OpPlot:
		for _, c := range op.Changes {
			p.Set(c.X, c.Y, c.New.Draw, c.New.Alpha)
		}
	case OpFill:
		w, h := p.Width(), p.Height()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p.Set(x, y, op.Value.Draw, op.Value.Alpha)
			}
		}
	case OpInvert:
		w, h := p.Width(), p.Height()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				d, a := p.At(x, y)
				p.Set(x, y, d^1, a)
			}
		}
	}
}

// Queue holds pixel operations until the next render tick.
//
// Ops are applied in the order they were pushed, all against the same
// plane, so a burst of writes from one gesture lands in a single pass.
type Queue struct {
	ops []Op
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{ops: make([]Op, 0, 64)}
}

// Push appends op.
func (q *Queue) Push(op Op) {
	q.ops = append(q.ops, op)
}

// Len returns the number of pending ops.
func (q *Queue) Len() int {
	return len(q.ops)
}

// Ops returns the pending ops. The slice is only valid until the next Push,
// Drain or Reset.
func (q *Queue) Ops() []Op {
	return q.ops
}

// Drain applies every pending op to p in order, empties the queue and
// returns the number of ops applied.
func (q *Queue) Drain(p raster.Plane) int {
	n := len(q.ops)
	for _, op := range q.ops {
		Apply(p, op)
	}
	q.Reset()
	return n
}

// Reset drops every pending op without applying it.
func (q *Queue) Reset() {
	clear(q.ops)
	q.ops = q.ops[:0]
}
