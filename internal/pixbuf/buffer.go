// Package pixbuf provides the monochrome pixel buffers behind every layer.
//
// A Buffer holds two parallel planes of width*height bytes in row-major
// order: the draw plane (the colour bit, 0 or 1) and the alpha plane (the
// opacity bit, 0 or 1). Index (x, y) maps to y*width + x in both planes.
package pixbuf

import "errors"

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("pixbuf: invalid dimensions")

// Buffer is a fixed-size draw+alpha raster.
//
// A Buffer can be frozen. A frozen buffer is shared by history snapshots and
// must never change again; writers clone it first (copy-on-write). Writing
// to a frozen buffer panics.
type Buffer struct {
	width  int
	height int
	draw   []uint8
	alpha  []uint8
	frozen bool
}

// New creates a transparent buffer (draw=0, alpha=0 everywhere).
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	n := width * height
	return &Buffer{
		width:  width,
		height: height,
		draw:   make([]uint8, n),
		alpha:  make([]uint8, n),
	}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Len returns width*height, the length of both planes.
func (b *Buffer) Len() int {
	return len(b.draw)
}

// Draw returns the draw plane. Callers must treat it as read-only.
func (b *Buffer) Draw() []uint8 {
	return b.draw
}

// Alpha returns the alpha plane. Callers must treat it as read-only.
func (b *Buffer) Alpha() []uint8 {
	return b.alpha
}

// Index returns the plane index of (x, y) and whether it is in bounds.
func (b *Buffer) Index(x, y int) (int, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	return y*b.width + x, true
}

// At returns the draw and alpha bits at (x, y).
// Out-of-bounds reads return (0, 0).
func (b *Buffer) At(x, y int) (draw, alpha uint8) {
	i, ok := b.Index(x, y)
	if !ok {
		return 0, 0
	}
	return b.draw[i], b.alpha[i]
}

// Set writes both bits at (x, y). Out-of-bounds writes are ignored.
// Values are normalised to 0 or 1.
func (b *Buffer) Set(x, y int, draw, alpha uint8) {
	i, ok := b.Index(x, y)
	if !ok {
		return
	}
	b.mustThaw()
	b.draw[i] = bit(draw)
	b.alpha[i] = bit(alpha)
}

// SetDraw writes the draw bit at (x, y) and leaves alpha untouched.
func (b *Buffer) SetDraw(x, y int, draw uint8) {
	i, ok := b.Index(x, y)
	if !ok {
		return
	}
	b.mustThaw()
	b.draw[i] = bit(draw)
}

// Clear zeroes both planes.
func (b *Buffer) Clear() {
	b.mustThaw()
	clear(b.draw)
	clear(b.alpha)
}

// Fill sets every pixel to (draw, alpha).
func (b *Buffer) Fill(draw, alpha uint8) {
	b.mustThaw()
	d, a := bit(draw), bit(alpha)
	for i := range b.draw {
		b.draw[i] = d
		b.alpha[i] = a
	}
}

// Clone returns an unfrozen deep copy.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		width:  b.width,
		height: b.height,
		draw:   make([]uint8, len(b.draw)),
		alpha:  make([]uint8, len(b.alpha)),
	}
	copy(c.draw, b.draw)
	copy(c.alpha, b.alpha)
	return c
}

// CopyFrom overwrites b with the contents of src.
// It reports false (and copies nothing) if the dimensions differ.
func (b *Buffer) CopyFrom(src *Buffer) bool {
	if src.width != b.width || src.height != b.height {
		return false
	}
	b.mustThaw()
	copy(b.draw, src.draw)
	copy(b.alpha, src.alpha)
	return true
}

// Resize returns a new buffer of the given size holding the overlapping
// top-left min(w, newW) x min(h, newH) region of b. Every other pixel is
// draw=0, alpha=0. The receiver is not modified.
func (b *Buffer) Resize(width, height int) (*Buffer, error) {
	nb, err := New(width, height)
	if err != nil {
		return nil, err
	}
	w := min(b.width, width)
	h := min(b.height, height)
	for y := 0; y < h; y++ {
		src := y * b.width
		dst := y * width
		copy(nb.draw[dst:dst+w], b.draw[src:src+w])
		copy(nb.alpha[dst:dst+w], b.alpha[src:src+w])
	}
	return nb, nil
}

// Equal reports whether a and b have the same size and identical planes.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == o {
		return true
	}
	if o == nil || b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.draw {
		if b.draw[i] != o.draw[i] || b.alpha[i] != o.alpha[i] {
			return false
		}
	}
	return true
}

// Freeze marks the buffer immutable. Freezing is permanent.
func (b *Buffer) Freeze() {
	b.frozen = true
}

// Frozen reports whether the buffer has been frozen.
func (b *Buffer) Frozen() bool {
	return b.frozen
}

func (b *Buffer) mustThaw() {
	if b.frozen {
		panic("pixbuf: write to frozen buffer")
	}
}

func bit(v uint8) uint8 {
	if v != 0 {
		return 1
	}
	return 0
}
