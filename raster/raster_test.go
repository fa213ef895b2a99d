// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"testing"
)

// grid is a minimal Plane for tests.
type grid struct {
	w, h  int
	draw  []uint8
	alpha []uint8
}

func newGrid(w, h int, v Value) *grid {
	g := &grid{w: w, h: h, draw: make([]uint8, w*h), alpha: make([]uint8, w*h)}
	for i := range g.draw {
		g.draw[i] = v.Draw
		g.alpha[i] = v.Alpha
	}
	return g
}

func (g *grid) Width() int  { return g.w }
func (g *grid) Height() int { return g.h }

func (g *grid) At(x, y int) (uint8, uint8) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0, 0
	}
	return g.draw[y*g.w+x], g.alpha[y*g.w+x]
}

func (g *grid) Set(x, y int, d, a uint8) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.draw[y*g.w+x] = d
	g.alpha[y*g.w+x] = a
}

func (g *grid) plot(points []image.Point, v Value) {
	for _, p := range points {
		g.Set(p.X, p.Y, v.Draw, v.Alpha)
	}
}

var (
	black       = Value{Draw: 0, Alpha: 1}
	white       = Value{Draw: 1, Alpha: 1}
	transparent = Value{}
)

func TestPlot(t *testing.T) {
	g := newGrid(4, 4, black)
	g.Set(1, 1, 1, 1)

	pts := []image.Point{{1, 1}, {2, 2}, {-1, 0}, {4, 4}}
	changes := Plot(g, pts, Solid(white))
	if len(changes) != 2 {
		t.Fatalf("len(Plot()) = %d, want 2 (out-of-bounds points dropped)", len(changes))
	}
	if changes[0].Old != white || changes[1].Old != black {
		t.Errorf("old values = %v, %v", changes[0].Old, changes[1].Old)
	}
	if v := at(g, 2, 2); v != black {
		t.Error("Plot wrote to the plane")
	}
}

func TestBounds(t *testing.T) {
	if !Bounds(nil).Empty() {
		t.Error("Bounds(nil) not empty")
	}
	got := Bounds([]image.Point{{3, 4}, {1, 7}, {5, 5}})
	want := image.Rect(1, 4, 6, 8)
	if got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}
