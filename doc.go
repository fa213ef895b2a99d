// Package monobit provides a layered, incrementally rendered monochrome
// raster engine.
//
// # Overview
//
// Every pixel of a monobit canvas holds two bits: a draw bit (0 is the
// primary colour, 1 the secondary) and an alpha bit (0 lets the layers
// below show through). An Engine keeps a stack of such layers, merges the
// visible ones into a composite and repaints only what changed onto an
// output surface.
//
// # Quick Start
//
//	import "github.com/gogpu/monobit"
//
//	out := surface.NewImageSurface(256, 256)
//	e, err := monobit.NewEngine(64, 64,
//	    monobit.WithSurface(out),
//	    monobit.WithZoom(4),
//	)
//	if err != nil {
//	    return err
//	}
//
//	e.AddLayer("ink")
//	e.DrawEllipse(32, 32, 20, 12, false, nil)
//	e.SaveState()
//	e.FloodFill(32, 32, monobit.Solid{Draw: 0, Alpha: 1})
//
//	e.Tick() // apply queued writes, rebuild the composite, paint
//	img := out.Snapshot()
//
// # Rendering model
//
// Pixel and shape primitives do not write immediately. They mark their
// bounding box dirty and queue a batched operation for the active layer.
// The next render tick applies the whole queue, rebuilds the composite if
// needed and paints the merged dirty rectangle, so a burst of writes from
// one gesture costs one paint. Flood fill is the exception: it runs at once
// because its region depends on the pixels it reads.
//
// Ticks are driven either by the host calling Tick once per display
// refresh, or by a render.FrameRequester passed with WithFrameRequester, in
// which case repeated mutations between refreshes coalesce into one frame.
//
// # History
//
// SaveState, structural layer operations, resizes and effective flood
// fills push an entry holding the full layer stack and active index. Layer
// buffers are shared copy-on-write between the live stack and history, so
// an entry costs only the layers changed after it.
//
// # Patterns and selections
//
// Primitives take a Pattern: Solid, Named (looked up in the PatternTable
// given with WithPatternTable) or Procedural. A Selection restricts
// FillSelection and ClearSelection to a region.
//
// # Logging
//
// monobit logs through log/slog and is silent by default. Use SetLogger, or
// WithLogger for a single engine.
package monobit
