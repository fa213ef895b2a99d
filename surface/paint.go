// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Source is a read-only 1-bit raster with an alpha bit per pixel.
type Source interface {
	Width() int
	Height() int
	At(x, y int) (draw, alpha uint8)
}

// Palette maps the draw bit to a colour: index 0 is the primary colour,
// index 1 the secondary.
type Palette [2]color.Color

// DefaultPalette is black on white.
var DefaultPalette = Palette{color.Black, color.White}

// Style controls how a Source is painted.
type Style struct {
	// Zoom is the integer scale factor. Values below 1 are treated as 1.
	Zoom int

	// Palette colours opaque pixels.
	Palette Palette

	// Checkerboard selects a checkerboard for transparent pixels instead
	// of the flat Background colour.
	Checkerboard bool

	// TileSize is the checkerboard tile edge in surface pixels.
	TileSize int

	Background   color.Color
	CheckerLight color.Color
	CheckerDark  color.Color
}

// DefaultStyle returns zoom 1, a black on white palette and a 4px
// light grey checkerboard.
func DefaultStyle() Style {
	return Style{
		Zoom:         1,
		Palette:      DefaultPalette,
		Checkerboard: true,
		TileSize:     4,
		Background:   color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF},
		CheckerLight: color.White,
		CheckerDark:  color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
	}
}

func (st *Style) normalize() {
	def := DefaultStyle()
	st.Zoom = max(st.Zoom, 1)
	st.TileSize = max(st.TileSize, 1)
	if st.Palette[0] == nil {
		st.Palette[0] = def.Palette[0]
	}
	if st.Palette[1] == nil {
		st.Palette[1] = def.Palette[1]
	}
	if st.Background == nil {
		st.Background = def.Background
	}
	if st.CheckerLight == nil {
		st.CheckerLight = def.CheckerLight
	}
	if st.CheckerDark == nil {
		st.CheckerDark = def.CheckerDark
	}
}

// Scale maps a canvas rectangle to surface coordinates at zoom.
func Scale(r image.Rectangle, zoom int) image.Rectangle {
	zoom = max(zoom, 1)
	return image.Rect(r.Min.X*zoom, r.Min.Y*zoom, r.Max.X*zoom, r.Max.Y*zoom)
}

// Paint draws region of src onto dst at st.Zoom and returns the surface
// rectangle it covered. region is clipped to src; an empty region paints
// nothing.
func Paint(dst Surface, src Source, region image.Rectangle, st Style) image.Rectangle {
	st.normalize()
	region = region.Canon().Intersect(image.Rect(0, 0, src.Width(), src.Height()))
	if region.Empty() {
		return image.Rectangle{}
	}

	out := Scale(region, st.Zoom)
	if is, ok := dst.(*ImageSurface); ok && !st.Checkerboard {
		is.scale(out, renderRegion(src, region, st))
		return out
	}

	z := st.Zoom
	for y := region.Min.Y; y < region.Max.Y; y++ {
		// Merge horizontal runs of equal colour into one FillRect.
		x := region.Min.X
		for x < region.Max.X {
			k := pixelClass(src, x, y)
			end := x + 1
			for end < region.Max.X && pixelClass(src, end, y) == k {
				end++
			}
			run := image.Rect(x*z, y*z, end*z, (y+1)*z)
			switch {
			case k != transparent:
				dst.FillRect(run, st.Palette[k])
			case st.Checkerboard:
				fillChecker(dst, run, st)
			default:
				dst.FillRect(run, st.Background)
			}
			x = end
		}
	}
	return out
}

const transparent = -1

// pixelClass returns the draw bit of an opaque pixel, or transparent.
func pixelClass(src Source, x, y int) int {
	d, a := src.At(x, y)
	switch {
	case a == 0:
		return transparent
	case d != 0:
		return 1
	default:
		return 0
	}
}

// fillChecker fills r with checkerboard tiles aligned to the surface origin.
func fillChecker(dst Surface, r image.Rectangle, st Style) {
	ts := st.TileSize
	for ty := r.Min.Y / ts; ty*ts < r.Max.Y; ty++ {
		for tx := r.Min.X / ts; tx*ts < r.Max.X; tx++ {
			tile := image.Rect(tx*ts, ty*ts, (tx+1)*ts, (ty+1)*ts).Intersect(r)
			if tile.Empty() {
				continue
			}
			c := st.CheckerLight
			if (tx+ty)&1 == 1 {
				c = st.CheckerDark
			}
			dst.FillRect(tile, c)
		}
	}
}

// renderRegion renders region at 1x into a new RGBA image whose origin is
// the region's top-left corner. Transparent pixels get the flat background.
func renderRegion(src Source, region image.Rectangle, st Style) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	bg := color.RGBAModel.Convert(st.Background)
	fg := [2]color.Color{
		color.RGBAModel.Convert(st.Palette[0]),
		color.RGBAModel.Convert(st.Palette[1]),
	}
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			d, a := src.At(x, y)
			c := bg
			if a != 0 {
				c = fg[min(d, 1)]
			}
			img.Set(x-region.Min.X, y-region.Min.Y, c)
		}
	}
	return img
}
