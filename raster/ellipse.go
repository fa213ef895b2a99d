// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"
)

// Ellipse returns the outline of the ellipse centred at (cx, cy) with radii
// rx and ry. Equal radii use the midpoint circle algorithm, unequal radii
// the two-region midpoint ellipse algorithm; both results then go through
// CompleteGaps. A zero radius degenerates to a straight line.
func Ellipse(cx, cy, rx, ry int) []image.Point {
	return EllipseIn(everywhere, cx, cy, rx, ry)
}

// EllipseIn is Ellipse restricted to the points inside clip.
func EllipseIn(clip image.Rectangle, cx, cy, rx, ry int) []image.Point {
	rx, ry = abs(rx), abs(ry)
	if rx == 0 || ry == 0 {
		return LineIn(clip, cx-rx, cy-ry, cx+rx, cy+ry)
	}
	if !outlineCrosses(clip, cx, cy, rx, ry) {
		return nil
	}
	// Gap completion counts neighbours beyond the clip edge.
	set := newPointSet(4*(rx+ry), clip.Inset(-2))
	if rx == ry {
		midpointCircle(set, cx, cy, rx)
	} else {
		midpointEllipse(set, cx, cy, rx, ry)
	}
	completeGaps(set, cx, cy, rx, ry)

	points := set.points[:0]
	for _, p := range set.points {
		if p.In(clip) {
			points = append(points, p)
		}
	}
	return points
}

// outlineCrosses reports whether the outline may have pixels inside clip.
// It rules out clips outside the bounding box and clips deep inside the
// ellipse: a corner inside the ellipse scaled by 1-2/min(rx, ry) is at least
// two pixels from the outline.
func outlineCrosses(clip image.Rectangle, cx, cy, rx, ry int) bool {
	box := image.Rect(cx-rx, cy-ry, cx+rx+1, cy+ry+1)
	if !box.Overlaps(clip) {
		return false
	}
	m := min(rx, ry)
	if m <= 2 {
		return true
	}
	s := 1 - 2/float64(m)
	for _, p := range []image.Point{
		clip.Min,
		{clip.Max.X - 1, clip.Min.Y},
		{clip.Min.X, clip.Max.Y - 1},
		clip.Max.Sub(image.Pt(1, 1)),
	} {
		fx := float64(p.X-cx) / float64(rx)
		fy := float64(p.Y-cy) / float64(ry)
		if fx*fx+fy*fy >= s*s {
			return true
		}
	}
	return false
}

// midpointCircle plots the eight-way symmetric points of a circle.
func midpointCircle(set *pointSet, cx, cy, r int) {
	x, y := r, 0
	d := 1 - r
	for x >= y {
		plot8(set, cx, cy, x, y)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func plot8(s *pointSet, cx, cy, x, y int) {
	s.add(cx+x, cy+y)
	s.add(cx-x, cy+y)
	s.add(cx+x, cy-y)
	s.add(cx-x, cy-y)
	s.add(cx+y, cy+x)
	s.add(cx-y, cy+x)
	s.add(cx+y, cy-x)
	s.add(cx-y, cy-x)
}

func plot4(s *pointSet, cx, cy, x, y int) {
	s.add(cx+x, cy+y)
	s.add(cx-x, cy+y)
	s.add(cx+x, cy-y)
	s.add(cx-x, cy-y)
}

// midpointEllipse plots the four-way symmetric points of an ellipse.
// Decision variables are scaled by 4 to stay in integers.
func midpointEllipse(set *pointSet, cx, cy, rx, ry int) {
	a2 := int64(rx) * int64(rx)
	b2 := int64(ry) * int64(ry)

	x, y := int64(0), int64(ry)
	dx := int64(0)   // 2*b2*x
	dy := 2 * a2 * y // 2*a2*y
	d := 4*b2 - 4*a2*y + a2

	// Region 1: slope magnitude below 1.
	for dx < dy {
		plot4(set, cx, cy, int(x), int(y))
		x++
		dx += 2 * b2
		if d < 0 {
			d += 4 * (dx + b2)
		} else {
			y--
			dy -= 2 * a2
			d += 4 * (dx - dy + b2)
		}
	}

	// Region 2: slope magnitude above 1.
	d = b2*(2*x+1)*(2*x+1) + 4*a2*(y-1)*(y-1) - 4*a2*b2
	for y >= 0 {
		plot4(set, cx, cy, int(x), int(y))
		y--
		dy -= 2 * a2
		if d > 0 {
			d += 4 * (a2 - dy)
		} else {
			x++
			dx += 2 * b2
			d += 4 * (dx - dy + a2)
		}
	}
}

// CompleteGaps walks the ideal ellipse parametrically and adds every curve
// pixel that is not yet in points but already has at least two painted
// 8-neighbours. This closes the single-pixel diagonal gaps integer stepping
// leaves where curvature is steep.
func CompleteGaps(points []image.Point, cx, cy, rx, ry int) []image.Point {
	set := newPointSet(len(points), everywhere)
	for _, p := range points {
		set.add(p.X, p.Y)
	}
	completeGaps(set, cx, cy, rx, ry)
	return set.points
}

func completeGaps(set *pointSet, cx, cy, rx, ry int) {
	steps := 16 * (max(rx, ry) + 4)
	for i := 0; i < steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(float64(rx)*math.Cos(t)))
		y := cy + int(math.Round(float64(ry)*math.Sin(t)))
		if !image.Pt(x, y).In(set.clip) || set.has(x, y) {
			continue
		}
		if paintedNeighbours(set, x, y) >= 2 {
			set.add(x, y)
		}
	}
}

func paintedNeighbours(s *pointSet, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && s.has(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// FilledEllipse returns every point of the ellipse interior, built row by
// row: row dy spans |dx| <= (rx+0.5)*sqrt(1 - (dy/(ry+0.5))^2).
func FilledEllipse(cx, cy, rx, ry int) []image.Point {
	return FilledEllipseIn(everywhere, cx, cy, rx, ry)
}

// FilledEllipseIn is FilledEllipse restricted to the points inside clip.
// Only rows and spans that meet clip are visited.
func FilledEllipseIn(clip image.Rectangle, cx, cy, rx, ry int) []image.Point {
	rx, ry = abs(rx), abs(ry)
	ex, ey := float64(rx)+0.5, float64(ry)+0.5

	top, bottom := max(-ry, clip.Min.Y-cy), min(ry, clip.Max.Y-1-cy)
	if top > bottom {
		return nil
	}
	width := min(2*rx+1, clip.Dx())
	points := make([]image.Point, 0, capHint((bottom-top+1)*width))
	for dy := top; dy <= bottom; dy++ {
		f := float64(dy) / ey
		half := int(math.Floor(ex * math.Sqrt(1-f*f)))
		lo, hi := max(cx-half, clip.Min.X), min(cx+half, clip.Max.X-1)
		for x := lo; x <= hi; x++ {
			points = append(points, image.Pt(x, cy+dy))
		}
	}
	return points
}

// Disc returns a filled circle of radius r, the brush used for thick lines.
func Disc(cx, cy, r int) []image.Point {
	return FilledEllipse(cx, cy, r, r)
}
