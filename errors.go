package monobit

import "errors"

var (
	// ErrInvalidSize is returned when a width or height is not positive.
	ErrInvalidSize = errors.New("monobit: invalid size")

	// ErrLayerIndex is returned by structural layer operations given an
	// index outside the layer stack.
	ErrLayerIndex = errors.New("monobit: layer index out of range")

	// ErrLastLayer is returned when an operation would leave the stack empty.
	ErrLastLayer = errors.New("monobit: cannot remove every layer")

	// ErrNoLayers is returned when a structural operation is given no indices.
	ErrNoLayers = errors.New("monobit: no layers given")

	// ErrInvalidBitmap is returned by LoadBitmapData for rows that do not
	// match the declared size.
	ErrInvalidBitmap = errors.New("monobit: malformed bitmap data")
)
