package monobit

import (
	"image"
	"math"
)

// Selection is a region predicate over canvas coordinates. The engine
// never changes a selection; FillSelection and ClearSelection only read it.
type Selection interface {
	Contains(x, y int) bool
}

// SelectionFunc adapts a function to Selection.
type SelectionFunc func(x, y int) bool

// Contains calls f(x, y).
func (f SelectionFunc) Contains(x, y int) bool {
	return f(x, y)
}

// RectSelection selects the pixels of Rect (Max exclusive).
type RectSelection struct {
	Rect image.Rectangle
}

// Contains reports whether (x, y) lies in the rectangle.
func (s RectSelection) Contains(x, y int) bool {
	return image.Pt(x, y).In(s.Rect.Canon())
}

// bounds implements boundedSelection.
func (s RectSelection) bounds() image.Rectangle {
	return s.Rect.Canon()
}

// EllipseSelection selects the pixels covered by the filled ellipse
// centred on (CX, CY) with radii RX and RY, the same pixels DrawEllipse
// paints when filled.
type EllipseSelection struct {
	CX, CY int
	RX, RY int
}

// Contains reports whether (x, y) lies in the ellipse.
func (s EllipseSelection) Contains(x, y int) bool {
	rx, ry := max(s.RX, -s.RX), max(s.RY, -s.RY)
	dx, dy := x-s.CX, y-s.CY
	if dy < -ry || dy > ry {
		return false
	}
	f := float64(dy) / (float64(ry) + 0.5)
	half := int(math.Floor((float64(rx) + 0.5) * math.Sqrt(1-f*f)))
	return dx >= -half && dx <= half
}

func (s EllipseSelection) bounds() image.Rectangle {
	rx, ry := max(s.RX, -s.RX), max(s.RY, -s.RY)
	return image.Rect(s.CX-rx, s.CY-ry, s.CX+rx+1, s.CY+ry+1)
}

// boundedSelection is a selection that knows a rectangle enclosing it.
type boundedSelection interface {
	bounds() image.Rectangle
}

// selectionPoints returns the points of clip inside sel, row by row.
func selectionPoints(sel Selection, clip image.Rectangle) []image.Point {
	if b, ok := sel.(boundedSelection); ok {
		clip = clip.Intersect(b.bounds())
	}
	var pts []image.Point
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if sel.Contains(x, y) {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	return pts
}
