// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image"

// maxDirtyRects is the threshold after which accumulated rects are collapsed
// into their bounding box. The merged result is the same; the list just
// stops growing during long strokes.
const maxDirtyRects = 64

// DirtyTracker accumulates the regions changed since the last paint.
//
// Rects are clamped to the tracker's bounds on entry. A frame's rects are
// merged into one bounding rectangle; there is no rectangle packing.
type DirtyTracker struct {
	bounds image.Rectangle
	rects  []image.Rectangle
}

// NewDirtyTracker creates a tracker for a width x height pixel grid.
func NewDirtyTracker(width, height int) *DirtyTracker {
	return &DirtyTracker{
		bounds: image.Rect(0, 0, width, height),
		rects:  make([]image.Rectangle, 0, 16),
	}
}

// Bounds returns the grid rectangle rects are clamped to.
func (t *DirtyTracker) Bounds() image.Rectangle {
	return t.bounds
}

// Add records r, clamped to the grid. Rects that are empty after clamping
// are dropped.
func (t *DirtyTracker) Add(r image.Rectangle) {
	r = r.Canon().Intersect(t.bounds)
	if r.Empty() {
		return
	}
	t.rects = append(t.rects, r)
	if len(t.rects) > maxDirtyRects {
		u := t.Merge()
		t.rects = append(t.rects[:0], u)
	}
}

// AddPixel records the 1x1 rect at (x, y).
func (t *DirtyTracker) AddPixel(x, y int) {
	t.Add(image.Rect(x, y, x+1, y+1))
}

// AddFull records the whole grid.
func (t *DirtyTracker) AddFull() {
	t.rects = append(t.rects[:0], t.bounds)
}

// Merge returns the bounding box of every recorded rect, or an empty
// rectangle when nothing was recorded.
func (t *DirtyTracker) Merge() image.Rectangle {
	var u image.Rectangle
	for _, r := range t.rects {
		u = u.Union(r)
	}
	return u
}

// Rects returns the recorded rects. The slice is only valid until the next
// call that modifies the tracker.
func (t *DirtyTracker) Rects() []image.Rectangle {
	return t.rects
}

// Len returns the number of recorded rects.
func (t *DirtyTracker) Len() int {
	return len(t.rects)
}

// Reset forgets every recorded rect. Called after each paint.
func (t *DirtyTracker) Reset() {
	t.rects = t.rects[:0]
}

// Resize changes the grid bounds and forgets every recorded rect.
func (t *DirtyTracker) Resize(width, height int) {
	t.bounds = image.Rect(0, 0, width, height)
	t.Reset()
}
