package monobit

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/monobit/raster"
)

// BitmapData is a plain copy of the composite: Pixels holds the draw bits
// and Alpha the opacity bits, both indexed [y][x].
type BitmapData struct {
	Width  int
	Height int
	Pixels [][]uint8
	Alpha  [][]uint8
}

// GetBitmapData exports the composite.
func (e *Engine) GetBitmapData() BitmapData {
	comp := e.Composite()
	d := BitmapData{
		Width:  e.width,
		Height: e.height,
		Pixels: make([][]uint8, e.height),
		Alpha:  make([][]uint8, e.height),
	}
	for y := 0; y < e.height; y++ {
		d.Pixels[y] = make([]uint8, e.width)
		d.Alpha[y] = make([]uint8, e.width)
		for x := 0; x < e.width; x++ {
			d.Pixels[y][x], d.Alpha[y][x] = comp.At(x, y)
		}
	}
	return d
}

// LoadBitmapData writes d into the active layer, resizing the canvas first
// if the size differs. A nil Alpha loads every pixel opaque. Malformed data
// fails with ErrInvalidBitmap or ErrInvalidSize and changes nothing.
//
// Like SetPixel, the writes are queued; call SaveState to record the load.
func (e *Engine) LoadBitmapData(d BitmapData) error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, d.Width, d.Height)
	}
	if err := d.check(); err != nil {
		return err
	}
	if d.Width != e.width || d.Height != e.height {
		if err := e.Resize(d.Width, d.Height); err != nil {
			return err
		}
	}
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			v := raster.Value{Draw: d.Pixels[y][x], Alpha: 1}
			if d.Alpha != nil {
				v.Alpha = d.Alpha[y][x]
			}
			e.SetPixelWithAlpha(x, y, v)
		}
	}
	e.invalidate(e.Bounds())
	return nil
}

func (d BitmapData) check() error {
	if len(d.Pixels) != d.Height {
		return fmt.Errorf("%w: %d pixel rows, want %d", ErrInvalidBitmap, len(d.Pixels), d.Height)
	}
	if d.Alpha != nil && len(d.Alpha) != d.Height {
		return fmt.Errorf("%w: %d alpha rows, want %d", ErrInvalidBitmap, len(d.Alpha), d.Height)
	}
	for y := 0; y < d.Height; y++ {
		if len(d.Pixels[y]) != d.Width {
			return fmt.Errorf("%w: pixel row %d has %d cells, want %d", ErrInvalidBitmap, y, len(d.Pixels[y]), d.Width)
		}
		if d.Alpha != nil && len(d.Alpha[y]) != d.Width {
			return fmt.Errorf("%w: alpha row %d has %d cells, want %d", ErrInvalidBitmap, y, len(d.Alpha[y]), d.Width)
		}
	}
	return nil
}

// Image returns the composite as a paletted image at 1x. Palette index 0
// is transparent, 1 and 2 are the colours of draw bits 0 and 1.
func (e *Engine) Image() *image.Paletted {
	comp := e.Composite()
	pal := color.Palette{color.Transparent, color.Black, color.White}
	if c := e.style.Palette[0]; c != nil {
		pal[1] = c
	}
	if c := e.style.Palette[1]; c != nil {
		pal[2] = c
	}
	img := image.NewPaletted(e.Bounds(), pal)
	for y := 0; y < e.height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < e.width; x++ {
			if d, a := comp.At(x, y); a != 0 {
				row[x] = 1 + d
			}
		}
	}
	return img
}

// Resize changes the canvas size of every layer, keeping the overlapping
// top-left region. New pixels are transparent. The resize is a history
// entry. Non-positive sizes fail with ErrInvalidSize.
func (e *Engine) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width == e.width && height == e.height {
		return nil
	}
	e.drain()
	for _, l := range e.layers {
		nb, err := l.buf.Resize(width, height)
		if err != nil {
			return err
		}
		e.pool.Put(l.buf)
		l.buf = nb
	}
	e.log().Debug("monobit: resize", "from", image.Pt(e.width, e.height), "to", image.Pt(width, height))
	e.setSize(width, height)
	e.atEntry = false
	e.invalidateAll()
	e.SaveState()
	return nil
}
