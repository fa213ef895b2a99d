// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"testing"
)

func TestNewImageSurface(t *testing.T) {
	s := NewImageSurface(100, 50)
	defer s.Close()

	if s.Width() != 100 {
		t.Errorf("Width() = %d, want 100", s.Width())
	}
	if s.Height() != 50 {
		t.Errorf("Height() = %d, want 50", s.Height())
	}
	if Bounds(s) != image.Rect(0, 0, 100, 50) {
		t.Errorf("Bounds() = %v", Bounds(s))
	}
}

func TestNewImageSurfaceClampsSize(t *testing.T) {
	s := NewImageSurface(0, -3)
	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1", s.Width(), s.Height())
	}
}

func TestImageSurfaceFillRectClips(t *testing.T) {
	s := NewImageSurface(4, 4)
	s.Clear(color.White)
	s.FillRect(image.Rect(2, 2, 10, 10), color.Black)

	img := s.Snapshot()
	if got := img.RGBAAt(3, 3); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("pixel (3,3) = %v, want black", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("pixel (1,1) = %v, want white", got)
	}
}

func TestImageSurfaceFromOffsetImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 14, 14))
	s := NewImageSurfaceFromImage(img)
	s.FillRect(image.Rect(0, 0, 1, 1), color.Black)

	if got := img.RGBAAt(10, 10); got.A != 0xFF {
		t.Errorf("origin pixel not filled: %v", got)
	}
	if got := s.Snapshot().RGBAAt(0, 0); got.A != 0xFF {
		t.Errorf("Snapshot origin = %v", got)
	}
}

func TestImageSurfaceClosed(t *testing.T) {
	s := NewImageSurface(2, 2)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	s.FillRect(image.Rect(0, 0, 2, 2), color.Black)
	if got := s.Snapshot().RGBAAt(0, 0); got.A != 0 {
		t.Errorf("closed surface was drawn: %v", got)
	}
}
