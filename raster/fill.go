// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// FillResult describes the outcome of a flood fill.
type FillResult struct {
	// Changes lists every pixel whose value changed.
	Changes []Change

	// Bounds is the bounding box of Changes; empty when nothing changed.
	Bounds image.Rectangle
}

// Changed returns the number of changed pixels.
func (r FillResult) Changed() int {
	return len(r.Changes)
}

// FloodFill fills the 4-connected region of pixels that share the seed's
// draw and alpha bits, writing paint(x, y) into each.
//
// The traversal uses an explicit stack and a visited bitmap, so region size
// is bounded only by memory. A pixel is filled only while it still holds the
// original seed value; painters that write non-uniform values therefore
// never cause a pixel to be revisited or overwritten twice.
//
// If the seed is out of bounds, or paint(seed) equals the seed's current
// value, nothing is written. Painters returning Alpha 0 still have their Draw
// bit stored.
func FloodFill(p Plane, x, y int, paint Painter) FillResult {
	if !inBounds(p, x, y) {
		return FillResult{}
	}
	orig := at(p, x, y)
	if paint(x, y) == orig {
		return FillResult{}
	}

	w, h := p.Width(), p.Height()
	visited := make([]bool, w*h)
	stack := []image.Point{{X: x, Y: y}}

	var res FillResult
	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if pt.X < 0 || pt.Y < 0 || pt.X >= w || pt.Y >= h {
			continue
		}
		i := pt.Y*w + pt.X
		if visited[i] {
			continue
		}
		cur := at(p, pt.X, pt.Y)
		if cur != orig {
			continue
		}
		visited[i] = true

		nv := paint(pt.X, pt.Y)
		p.Set(pt.X, pt.Y, nv.Draw, nv.Alpha)
		if nv != cur {
			res.Changes = append(res.Changes, Change{X: pt.X, Y: pt.Y, Old: cur, New: nv})
			px := image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))}
			if res.Bounds.Empty() {
				res.Bounds = px
			} else {
				res.Bounds = res.Bounds.Union(px)
			}
		}

		stack = append(stack,
			image.Pt(pt.X+1, pt.Y),
			image.Pt(pt.X-1, pt.Y),
			image.Pt(pt.X, pt.Y+1),
			image.Pt(pt.X, pt.Y-1),
		)
	}
	return res
}
