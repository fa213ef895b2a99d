package monobit

import (
	"image"

	"github.com/gogpu/monobit/raster"
	"github.com/gogpu/monobit/render"
)

// SetPixel queues a write of (x, y) on the active layer. With a nil
// pattern only the draw bit is set to value and alpha is kept; otherwise
// the pattern decides both bits. Out-of-bounds coordinates are ignored.
//
// The pixel is marked dirty at once; the write itself lands on the next
// render tick.
func (e *Engine) SetPixel(x, y int, value uint8, p Pattern) {
	if !e.inBounds(x, y) {
		return
	}
	op := render.Op{Kind: render.OpSetDraw, X: x, Y: y, Value: raster.Value{Draw: bit(value)}}
	if p != nil {
		op.Kind = render.OpSetPixel
		op.Value = p.resolve(e)(x, y)
	}
	e.enqueue(op, image.Rect(x, y, x+1, y+1))
}

// SetPixelWithAlpha queues a write of both bits of (x, y) on the active
// layer. Out-of-bounds coordinates are ignored.
func (e *Engine) SetPixelWithAlpha(x, y int, v raster.Value) {
	if !e.inBounds(x, y) {
		return
	}
	v = raster.Value{Draw: bit(v.Draw), Alpha: bit(v.Alpha)}
	e.enqueue(render.Op{Kind: render.OpSetPixel, X: x, Y: y, Value: v}, image.Rect(x, y, x+1, y+1))
}

// GetPixel returns the active layer's value at (x, y), including queued
// writes. Outside the canvas it returns the zero Value.
func (e *Engine) GetPixel(x, y int) raster.Value {
	if !e.inBounds(x, y) {
		return raster.Value{}
	}
	e.drain()
	d, a := e.activeLayer().buf.At(x, y)
	return raster.Value{Draw: d, Alpha: a}
}

// FloodFill fills the 4-connected region of the active layer around
// (x, y) whose pixels equal the seed pixel, and returns what changed.
//
// Unlike the other primitives it runs at once, since the region depends on
// the current pixels. A fill that changes anything becomes a history entry;
// one that changes nothing leaves the composite and history untouched.
func (e *Engine) FloodFill(x, y int, p Pattern) raster.FillResult {
	if !e.inBounds(x, y) {
		return raster.FillResult{}
	}
	e.drain()
	paint := e.painter(p)
	l := e.activeLayer()

	// Seed guard before copy-on-write, so a no-op fill never clones.
	d, a := l.buf.At(x, y)
	if paint(x, y) == (raster.Value{Draw: d, Alpha: a}) {
		return raster.FillResult{}
	}

	res := raster.FloodFill(e.writable(l), x, y, paint)
	if res.Changed() == 0 {
		return res
	}
	e.atEntry = false
	e.compositeDirty = true
	e.invalidate(res.Bounds)
	e.SaveState()
	e.log().Debug("monobit: flood fill", "x", x, "y", y, "changed", res.Changed(), "bounds", res.Bounds)
	return res
}

// FillSelection queues pattern writes for every canvas pixel inside sel and
// returns the changes.
func (e *Engine) FillSelection(sel Selection, p Pattern) []raster.Change {
	if sel == nil {
		return nil
	}
	return e.plot(selectionPoints(sel, e.Bounds()), e.painter(p))
}

// ClearSelection queues transparent writes (draw=0, alpha=0) for every
// pixel inside sel and returns the changes.
func (e *Engine) ClearSelection(sel Selection) []raster.Change {
	if sel == nil {
		return nil
	}
	return e.plot(selectionPoints(sel, e.Bounds()), raster.Solid(raster.Value{}))
}

// ClearLayer queues clearing the active layer to transparent.
func (e *Engine) ClearLayer() {
	e.enqueue(render.Op{Kind: render.OpFill}, e.Bounds())
}

// InvertLayer queues flipping every draw bit of the active layer. Alpha is
// kept.
func (e *Engine) InvertLayer() {
	e.enqueue(render.Op{Kind: render.OpInvert}, e.Bounds())
}

// PendingOps returns the number of queued writes.
func (e *Engine) PendingOps() int {
	return e.queue.Len()
}
