// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"
	"slices"
	"testing"
)

func contains(points []image.Point, x, y int) bool {
	return slices.Contains(points, image.Pt(x, y))
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"horizontal", 0, 0, 5, 0},
		{"vertical", 2, 7, 2, 1},
		{"diagonal", 0, 0, 4, 4},
		{"shallow", 0, 0, 9, 3},
		{"steep reversed", 5, 9, 1, 0},
		{"point", 3, 3, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := Line(tt.x0, tt.y0, tt.x1, tt.y1)
			want := max(abs(tt.x1-tt.x0), abs(tt.y1-tt.y0)) + 1
			if len(pts) != want {
				t.Errorf("len = %d, want %d", len(pts), want)
			}
			if pts[0] != image.Pt(tt.x0, tt.y0) || pts[len(pts)-1] != image.Pt(tt.x1, tt.y1) {
				t.Errorf("endpoints = %v..%v", pts[0], pts[len(pts)-1])
			}
			for i := 1; i < len(pts); i++ {
				d := pts[i].Sub(pts[i-1])
				if abs(d.X) > 1 || abs(d.Y) > 1 {
					t.Fatalf("step %d jumps by %v", i, d)
				}
			}
		})
	}
}

func TestThickLine(t *testing.T) {
	thin := ThickLine(0, 5, 10, 5, 1)
	if !slices.Equal(thin, Line(0, 5, 10, 5)) {
		t.Error("width 1 should equal Line")
	}

	thick := ThickLine(2, 5, 10, 5, 3)
	for x := 2; x <= 10; x++ {
		for _, y := range []int{4, 5, 6} {
			if !contains(thick, x, y) {
				t.Errorf("width-3 line misses (%d, %d)", x, y)
			}
		}
	}
	seen := map[image.Point]bool{}
	for _, p := range thick {
		if seen[p] {
			t.Fatalf("duplicate point %v", p)
		}
		seen[p] = true
	}
}

func TestRect(t *testing.T) {
	outline := Rect(3, 2, 0, 0, false)
	if len(outline) != 10 {
		t.Errorf("outline len = %d, want 10", len(outline))
	}
	if contains(outline, 1, 1) {
		t.Error("outline contains interior point (1, 1)")
	}
	filled := Rect(0, 0, 3, 2, true)
	if len(filled) != 12 {
		t.Errorf("filled len = %d, want 12", len(filled))
	}
	if got := Rect(4, 4, 4, 4, false); len(got) != 1 {
		t.Errorf("single-cell outline len = %d, want 1", len(got))
	}
	if got := Rect(0, 0, 0, 3, false); len(got) != 4 {
		t.Errorf("one-column outline len = %d, want 4", len(got))
	}
}

func TestCircleOutlineIsClosed(t *testing.T) {
	g := newGrid(32, 32, transparent)
	g.plot(Ellipse(10, 10, 5, 5), white)

	// A 4-connected fill from the corner must not reach the interior of an
	// 8-connected ring.
	FloodFill(g, 0, 0, Solid(black))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			dx, dy := x-10, y-10
			if dx*dx+dy*dy < 16 && at(g, x, y) != transparent {
				t.Fatalf("exterior fill leaked into (%d, %d)", x, y)
			}
		}
	}
}

func TestEllipseOutlineIsClosed(t *testing.T) {
	for _, r := range [][2]int{{9, 4}, {3, 8}, {12, 11}, {1, 2}} {
		g := newGrid(40, 40, transparent)
		g.plot(Ellipse(20, 20, r[0], r[1]), white)
		FloodFill(g, 0, 0, Solid(black))
		if at(g, 20, 20) != transparent {
			t.Errorf("ellipse %dx%d: exterior fill reached the centre", r[0], r[1])
		}
	}
}

func TestCircleRadius(t *testing.T) {
	for _, p := range Ellipse(10, 10, 5, 5) {
		d := math.Hypot(float64(p.X-10), float64(p.Y-10))
		if d < 4 || d > 6 {
			t.Errorf("point %v at distance %.2f from centre", p, d)
		}
	}
}

func TestEllipseExtremesAndSymmetry(t *testing.T) {
	cx, cy, rx, ry := 16, 12, 7, 3
	pts := Ellipse(cx, cy, rx, ry)
	for _, e := range []image.Point{{cx + rx, cy}, {cx - rx, cy}, {cx, cy + ry}, {cx, cy - ry}} {
		if !contains(pts, e.X, e.Y) {
			t.Errorf("ellipse misses extreme point %v", e)
		}
	}
	raw := midpointEllipse(cx, cy, rx, ry)
	for _, p := range raw {
		mx := 2*cx - p.X
		my := 2*cy - p.Y
		if !contains(raw, mx, p.Y) || !contains(raw, p.X, my) {
			t.Errorf("point %v has no mirror image", p)
		}
	}
}

func TestEllipseDegenerate(t *testing.T) {
	if got := Ellipse(5, 5, 3, 0); len(got) != 7 {
		t.Errorf("flat ellipse len = %d, want 7", len(got))
	}
	if got := Ellipse(5, 5, 0, 2); len(got) != 5 {
		t.Errorf("thin ellipse len = %d, want 5", len(got))
	}
	if got := Ellipse(5, 5, 0, 0); len(got) != 1 {
		t.Errorf("zero ellipse len = %d, want 1", len(got))
	}
}

func TestCompleteGapsClosesHole(t *testing.T) {
	pts := midpointCircle(10, 10, 5)
	holed := slices.DeleteFunc(slices.Clone(pts), func(p image.Point) bool {
		return p == image.Pt(15, 10)
	})
	if contains(holed, 15, 10) {
		t.Fatal("setup failed to remove point")
	}
	got := CompleteGaps(holed, 10, 10, 5, 5)
	if !contains(got, 15, 10) {
		t.Error("CompleteGaps did not restore (15, 10)")
	}
	for _, p := range holed {
		if !contains(got, p.X, p.Y) {
			t.Errorf("CompleteGaps dropped %v", p)
		}
	}
}

func TestFilledEllipseCoversOutline(t *testing.T) {
	filled := FilledEllipse(10, 10, 5, 5)
	for _, p := range midpointCircle(10, 10, 5) {
		if !contains(filled, p.X, p.Y) {
			t.Errorf("filled circle misses outline point %v", p)
		}
	}
	if got := FilledEllipse(3, 3, 0, 0); len(got) != 1 {
		t.Errorf("radius 0 fill len = %d, want 1", len(got))
	}
	if got := FilledEllipse(0, 0, 4, 0); len(got) != 9 {
		t.Errorf("flat fill len = %d, want 9", len(got))
	}
}

type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func TestSpray(t *testing.T) {
	rng := &seqRand{vals: []float64{0, 1, 0.25, 0.5, 0.5, 0.99, 0.75, 0.1}}
	pts := Spray(20, 20, 6, 50, rng)
	if len(pts) == 0 || len(pts) > 50 {
		t.Fatalf("len = %d, want 1..50", len(pts))
	}
	for _, p := range pts {
		if d := math.Hypot(float64(p.X-20), float64(p.Y-20)); d > 6.8 {
			t.Errorf("point %v outside spray radius (%.2f)", p, d)
		}
	}
	if Spray(0, 0, 5, 0, rng) != nil {
		t.Error("Spray with count 0 should return nil")
	}
}
