// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ImageSurface is a CPU surface backed by a draw.Image.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//	surface.Paint(s, composite, region, surface.DefaultStyle())
//	img := s.Snapshot()
type ImageSurface struct {
	img    draw.Image
	bounds image.Rectangle

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a surface backed by a new *image.RGBA.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	width = max(width, 1)
	height = max(height, 1)
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageSurfaceFromImage creates a surface that paints directly into img.
// Surface coordinates are relative to img.Bounds().Min.
func NewImageSurfaceFromImage(img draw.Image) *ImageSurface {
	return &ImageSurface{img: img, bounds: img.Bounds()}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.bounds.Dx()
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.bounds.Dy()
}

// Image returns the backing image.
func (s *ImageSurface) Image() draw.Image {
	return s.img
}

// Clear fills the entire surface with c.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.bounds, image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect fills r with c. r is in surface coordinates and is clipped to
// the surface.
func (s *ImageSurface) FillRect(r image.Rectangle, c color.Color) {
	if s.closed {
		return
	}
	r = r.Add(s.bounds.Min).Intersect(s.bounds)
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// scale draws src, scaled with nearest-neighbour sampling, into dr
// (surface coordinates).
func (s *ImageSurface) scale(dr image.Rectangle, src image.Image) {
	if s.closed {
		return
	}
	draw.NearestNeighbor.Scale(s.img, dr.Add(s.bounds.Min), src, src.Bounds(), draw.Src, nil)
}

// Snapshot returns a copy of the surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	draw.Draw(out, out.Bounds(), s.img, s.bounds.Min, draw.Src)
	return out
}

// Close releases the surface. Later drawing calls are ignored.
// Close is idempotent.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}
