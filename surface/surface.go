// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Surface is the output raster the engine paints to.
//
// Example usage:
//
//	s := surface.NewImageSurface(256, 256)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.FillRect(image.Rect(0, 0, 8, 8), color.Black)
//	img := s.Snapshot()
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with c.
	Clear(c color.Color)

	// FillRect fills r, clipped to the surface, with the solid colour c.
	FillRect(r image.Rectangle, c color.Color)
}

// Bounds returns the rectangle covered by s.
func Bounds(s Surface) image.Rectangle {
	return image.Rect(0, 0, s.Width(), s.Height())
}
