package monobit

import (
	"image"

	"github.com/gogpu/monobit/raster"
	"github.com/gogpu/monobit/render"
)

// plot queues the writes paint makes over points on the active layer and
// returns them. Old values include writes still in the queue. Shapes are
// rasterised clipped to the canvas, so their size is not limited by it.
func (e *Engine) plot(points []image.Point, paint raster.Painter) []raster.Change {
	if len(points) == 0 {
		return nil
	}
	e.drain()
	changes := raster.Plot(e.activeLayer().buf, points, paint)
	if len(changes) == 0 {
		return nil
	}
	e.enqueue(render.Op{Kind: render.OpPlot, Changes: changes}, raster.Bounds(points))
	return changes
}

// DrawLine queues a line from (x0, y0) to (x1, y1), both ends included. A
// width above 1 stamps a disc of radius width/2 at every step.
//
// Shapes do not create history entries; call SaveState when the gesture
// ends.
func (e *Engine) DrawLine(x0, y0, x1, y1, width int, p Pattern) []raster.Change {
	var pts []image.Point
	if width > 1 {
		pts = raster.ThickLineIn(e.Bounds(), x0, y0, x1, y1, width)
	} else {
		pts = raster.LineIn(e.Bounds(), x0, y0, x1, y1)
	}
	return e.plot(pts, e.painter(p))
}

// DrawRect queues the rectangle with corners (x0, y0) and (x1, y1), both
// included, filled or as a one pixel outline.
func (e *Engine) DrawRect(x0, y0, x1, y1 int, filled bool, p Pattern) []raster.Change {
	return e.plot(raster.RectIn(e.Bounds(), x0, y0, x1, y1, filled), e.painter(p))
}

// DrawEllipse queues the ellipse centred on (cx, cy) with radii rx and ry.
// Equal radii draw a circle.
func (e *Engine) DrawEllipse(cx, cy, rx, ry int, filled bool, p Pattern) []raster.Change {
	var pts []image.Point
	if filled {
		pts = raster.FilledEllipseIn(e.Bounds(), cx, cy, rx, ry)
	} else {
		pts = raster.EllipseIn(e.Bounds(), cx, cy, rx, ry)
	}
	return e.plot(pts, e.painter(p))
}

// Spray queues count random dots inside the disc of the given radius
// around (cx, cy).
func (e *Engine) Spray(cx, cy, radius, count int, p Pattern) []raster.Change {
	return e.plot(raster.SprayIn(e.Bounds(), cx, cy, radius, count, e.rng), e.painter(p))
}
