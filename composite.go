package monobit

import (
	"github.com/gogpu/monobit/internal/pixbuf"
	"github.com/gogpu/monobit/raster"
	"github.com/gogpu/monobit/surface"
)

// compositeInto merges src over dst: every opaque src pixel replaces the
// dst pixel. Alpha is one bit, so there is no blending.
func compositeInto(dst, src *pixbuf.Buffer) {
	dd, da := dst.Draw(), dst.Alpha()
	sd, sa := src.Draw(), src.Alpha()
	for i, a := range sa {
		if a != 0 {
			dd[i] = sd[i]
			da[i] = 1
		}
	}
}

// rebuild recomputes the composite from the visible layers when it is
// stale. The cheap path is a composite cached for the current history
// entry.
func (e *Engine) rebuild() *pixbuf.Buffer {
	if !e.compositeDirty {
		return e.composite
	}
	if e.atEntry {
		if cached, ok := e.composites.Get(e.entryID); ok && e.composite.CopyFrom(cached) {
			e.compositeDirty = false
			e.log().Debug("monobit: composite restored from cache", "entry", e.entryID)
			return e.composite
		}
	}
	e.composite.Clear()
	visible := 0
	for _, l := range e.layers {
		if l.visible {
			compositeInto(e.composite, l.buf)
			visible++
		}
	}
	e.compositeDirty = false
	e.log().Debug("monobit: composite rebuilt", "layers", visible)
	return e.composite
}

// remember stores the composite for the current history entry so that
// returning to it later skips the rebuild.
func (e *Engine) remember() {
	if !e.atEntry || e.compositeDirty {
		return
	}
	if _, ok := e.composites.Get(e.entryID); ok {
		return
	}
	e.composites.Set(e.entryID, e.pool.Clone(e.composite))
}

// Composite returns the merged view of every visible layer, applying
// queued writes first. The result is read-only and valid until the next
// engine call.
func (e *Engine) Composite() surface.Source {
	e.drain()
	return e.rebuild()
}

// CompositeDirty reports whether the composite will be rebuilt on its next
// read.
func (e *Engine) CompositeDirty() bool {
	return e.compositeDirty || e.queue.Len() > 0
}

// CompositePixel returns the composite value at (x, y), or the zero Value
// outside the canvas.
func (e *Engine) CompositePixel(x, y int) raster.Value {
	if !e.inBounds(x, y) {
		return raster.Value{}
	}
	d, a := e.Composite().At(x, y)
	return raster.Value{Draw: d, Alpha: a}
}
