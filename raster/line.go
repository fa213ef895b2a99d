// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// Line returns the Bresenham points from (x0, y0) to (x1, y1), both ends
// included, in drawing order.
func Line(x0, y0, x1, y1 int) []image.Point {
	return LineIn(everywhere, x0, y0, x1, y1)
}

// LineIn is Line restricted to the points inside clip. Points keep their
// positions on the full line; the line is not re-rasterised from clipped
// endpoints.
func LineIn(clip image.Rectangle, x0, y0, x1, y1 int) []image.Point {
	box := image.Rect(min(x0, x1), min(y0, y1), max(x0, x1)+1, max(y0, y1)+1)
	vis := box.Intersect(clip)
	if vis.Empty() {
		return nil
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	points := make([]image.Point, 0, capHint(max(vis.Dx(), vis.Dy())))
	err := dx + dy
	for {
		if image.Pt(x0, y0).In(clip) {
			points = append(points, image.Pt(x0, y0))
		} else if len(points) > 0 {
			// The path is monotone in x and y, so it cannot re-enter.
			return points
		}
		if x0 == x1 && y0 == y1 {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// ThickLine returns the points of a line of the given width. Widths above 1
// stamp a filled disc of radius width/2 at every Bresenham sample; the
// result holds each point once.
func ThickLine(x0, y0, x1, y1, width int) []image.Point {
	return ThickLineIn(everywhere, x0, y0, x1, y1, width)
}

// ThickLineIn is ThickLine restricted to the points inside clip. Only
// samples within width/2 of clip are stamped, each with the clipped disc.
func ThickLineIn(clip image.Rectangle, x0, y0, x1, y1, width int) []image.Point {
	if width <= 1 {
		return LineIn(clip, x0, y0, x1, y1)
	}
	r := width / 2
	spine := LineIn(clip.Inset(-r), x0, y0, x1, y1)
	if len(spine) == 0 {
		return nil
	}
	set := newPointSet(len(spine)*(2*r+1), clip)
	for _, p := range spine {
		for _, q := range FilledEllipseIn(clip, p.X, p.Y, r, r) {
			set.add(q.X, q.Y)
		}
	}
	return set.points
}
