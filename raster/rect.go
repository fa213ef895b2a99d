// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// Rect returns the points of the axis-aligned rectangle with corners
// (x0, y0) and (x1, y1), both inclusive and in any order. Filled rectangles
// cover every cell; outlines only cells on the min/max row or column.
func Rect(x0, y0, x1, y1 int, filled bool) []image.Point {
	return RectIn(everywhere, x0, y0, x1, y1, filled)
}

// RectIn is Rect restricted to the points inside clip.
func RectIn(clip image.Rectangle, x0, y0, x1, y1 int, filled bool) []image.Point {
	minX, maxX := min(x0, x1), max(x0, x1)
	minY, maxY := min(y0, y1), max(y0, y1)
	vis := image.Rect(minX, minY, maxX+1, maxY+1).Intersect(clip)
	if vis.Empty() {
		return nil
	}

	n := 2*vis.Dx() + 2*vis.Dy()
	if filled {
		n = vis.Dx() * vis.Dy()
	}
	points := make([]image.Point, 0, capHint(n))
	for y := vis.Min.Y; y < vis.Max.Y; y++ {
		if !filled && y != minY && y != maxY {
			if minX >= vis.Min.X {
				points = append(points, image.Pt(minX, y))
			}
			if maxX != minX && maxX < vis.Max.X {
				points = append(points, image.Pt(maxX, y))
			}
			continue
		}
		for x := vis.Min.X; x < vis.Max.X; x++ {
			points = append(points, image.Pt(x, y))
		}
	}
	return points
}
