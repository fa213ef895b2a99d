// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"
)

// Rand is the random source used by Spray. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	Float64() float64
}

// Spray returns up to count distinct points scattered uniformly over the
// disc of the given radius around (cx, cy).
func Spray(cx, cy, radius, count int, rng Rand) []image.Point {
	return SprayIn(everywhere, cx, cy, radius, count, rng)
}

// SprayIn is Spray restricted to the points inside clip. Dots landing
// outside clip still consume random numbers, so the dots inside match
// Spray's for the same source.
func SprayIn(clip image.Rectangle, cx, cy, radius, count int, rng Rand) []image.Point {
	radius = abs(radius)
	if count <= 0 {
		return nil
	}
	set := newPointSet(count, clip)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * rng.Float64()
		dist := float64(radius) * math.Sqrt(rng.Float64())
		x := cx + int(math.Round(dist*math.Cos(angle)))
		y := cy + int(math.Round(dist*math.Sin(angle)))
		set.add(x, y)
	}
	return set.points
}
