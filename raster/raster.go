// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements the pixel algorithms of the engine: flood fill,
// lines, rectangles, circles and ellipses, brush discs and spray.
//
// Every algorithm is stateless. Shape functions return the integer points
// they cover; Plot turns a point set into the list of changes a painter
// would make on a plane, without writing. FloodFill is the one algorithm
// that writes, because its boundary depends on the values it overwrites.
//
// Each shape function has an In variant taking a clip rectangle. It returns
// only the points inside the clip, and its memory use is bounded by the
// clip rather than by the shape, so a canvas may be drawn on with shapes
// far larger than itself.
package raster

import (
	"image"
	"math"
)

// Value is the content of one pixel: the colour bit and the opacity bit.
type Value struct {
	Draw  uint8
	Alpha uint8
}

// Change records one pixel touched by an operation.
type Change struct {
	X, Y int
	Old  Value
	New  Value
}

// Plane is a bounds-safe draw+alpha raster. At returns (0, 0) and Set does
// nothing outside [0, Width) x [0, Height).
type Plane interface {
	Width() int
	Height() int
	At(x, y int) (draw, alpha uint8)
	Set(x, y int, draw, alpha uint8)
}

// Painter yields the value to write at (x, y).
// Patterns and solid colours are both expressed as painters.
type Painter func(x, y int) Value

// Solid returns a painter that writes v everywhere.
func Solid(v Value) Painter {
	return func(int, int) Value { return v }
}

// at reads a plane pixel as a Value.
func at(p Plane, x, y int) Value {
	d, a := p.At(x, y)
	return Value{Draw: d, Alpha: a}
}

func inBounds(p Plane, x, y int) bool {
	return x >= 0 && y >= 0 && x < p.Width() && y < p.Height()
}

// Plot evaluates paint over points and returns one Change per in-bounds
// point, with Old read from p. The plane is not modified.
func Plot(p Plane, points []image.Point, paint Painter) []Change {
	changes := make([]Change, 0, len(points))
	for _, pt := range points {
		if !inBounds(p, pt.X, pt.Y) {
			continue
		}
		changes = append(changes, Change{
			X:   pt.X,
			Y:   pt.Y,
			Old: at(p, pt.X, pt.Y),
			New: paint(pt.X, pt.Y),
		})
	}
	return changes
}

// Bounds returns the smallest rectangle containing every point.
func Bounds(points []image.Point) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: points[0], Max: points[0].Add(image.Pt(1, 1))}
	for _, pt := range points[1:] {
		r = r.Union(image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))})
	}
	return r
}

// everywhere is the clip of the unclipped shape functions.
var everywhere = image.Rect(math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32)

// maxPrealloc bounds the capacity reserved up front for point lists; longer
// lists grow by append.
const maxPrealloc = 1 << 16

func capHint(n int) int {
	return min(max(n, 0), maxPrealloc)
}

// pointSet collects unique points inside clip in insertion order.
type pointSet struct {
	clip   image.Rectangle
	seen   map[image.Point]struct{}
	points []image.Point
}

func newPointSet(capacity int, clip image.Rectangle) *pointSet {
	capacity = capHint(capacity)
	return &pointSet{
		clip:   clip,
		seen:   make(map[image.Point]struct{}, capacity),
		points: make([]image.Point, 0, capacity),
	}
}

func (s *pointSet) add(x, y int) {
	p := image.Pt(x, y)
	if !p.In(s.clip) {
		return
	}
	if _, ok := s.seen[p]; ok {
		return
	}
	s.seen[p] = struct{}{}
	s.points = append(s.points, p)
}

func (s *pointSet) has(x, y int) bool {
	_, ok := s.seen[image.Pt(x, y)]
	return ok
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
