package monobit

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/monobit/surface"
)

// Tick runs one render pass now: queued writes are applied to the active
// layer, the composite is rebuilt if stale, and the merged dirty rectangle
// (the whole canvas when nothing was marked) is painted to the surface.
// It returns the painted canvas rectangle, empty without a surface.
//
// Hosts without a FrameRequester call Tick once per display refresh. With
// a requester, ticks run on their own and a manual Tick cancels the
// pending one.
func (e *Engine) Tick() image.Rectangle {
	if e.frames != nil {
		e.frames.Cancel()
	}
	return e.renderFrame()
}

// renderFrame is the scheduled render pass.
func (e *Engine) renderFrame() image.Rectangle {
	n := e.drain()
	comp := e.rebuild()

	region := e.dirty.Merge()
	if region.Empty() {
		region = e.Bounds()
	}
	e.dirty.Reset()

	if e.surface == nil {
		return image.Rectangle{}
	}
	if e.surfaceStale {
		// Surface pixels outside the canvas keep the background.
		e.surface.Clear(e.background())
		e.surfaceStale = false
		region = e.Bounds()
	}
	surface.Paint(e.surface, comp, region, e.style)
	e.log().Debug("monobit: frame", "ops", n, "region", region)
	return region
}

// Flush applies queued writes without rendering.
func (e *Engine) Flush() {
	e.drain()
}

// RenderPending reports whether a scheduled frame has not run yet. It is
// always false without a FrameRequester.
func (e *Engine) RenderPending() bool {
	return e.frames != nil && e.frames.Pending()
}

// AttachSurface sets the surface render passes paint to. The next render
// pass clears it and repaints the whole canvas. A nil surface detaches.
func (e *Engine) AttachSurface(s surface.Surface) {
	e.surface = s
	e.surfaceStale = s != nil
	e.invalidate(e.Bounds())
}

// Surface returns the attached surface, or nil.
func (e *Engine) Surface() surface.Surface {
	return e.surface
}

// SetZoom sets the integer display scale. Values below 1 are treated as 1.
func (e *Engine) SetZoom(zoom int) {
	zoom = max(zoom, 1)
	if zoom == e.style.Zoom {
		return
	}
	e.style.Zoom = zoom
	e.invalidate(e.Bounds())
}

// Zoom returns the display scale.
func (e *Engine) Zoom() int {
	return max(e.style.Zoom, 1)
}

// SetCheckerboard switches transparent pixels between a checkerboard and
// the flat background colour.
func (e *Engine) SetCheckerboard(on bool) {
	if on == e.style.Checkerboard {
		return
	}
	e.style.Checkerboard = on
	e.invalidate(e.Bounds())
}

// SetBackground sets the flat background colour.
func (e *Engine) SetBackground(c color.Color) {
	e.style.Background = c
	e.invalidate(e.Bounds())
}

// background returns the flat background colour, never nil.
func (e *Engine) background() color.Color {
	if e.style.Background != nil {
		return e.style.Background
	}
	return surface.DefaultStyle().Background
}

// Style returns the current display style.
func (e *Engine) Style() surface.Style {
	return e.style
}

// GetCanvasCoordinates maps a surface position, such as a pointer event,
// to the canvas pixel under it. The result may lie outside the canvas.
func (e *Engine) GetCanvasCoordinates(sx, sy float64) (x, y int) {
	z := float64(e.Zoom())
	return int(math.Floor(sx / z)), int(math.Floor(sy / z))
}
