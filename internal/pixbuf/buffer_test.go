package pixbuf

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	b, err := New(4, 3)
	if err != nil {
		t.Fatalf("New(4, 3) error = %v", err)
	}
	if b.Width() != 4 || b.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", b.Width(), b.Height())
	}
	if len(b.Draw()) != 12 || len(b.Alpha()) != 12 {
		t.Errorf("plane lengths = %d/%d, want 12/12", len(b.Draw()), len(b.Alpha()))
	}
}

func TestNewInvalid(t *testing.T) {
	for _, sz := range [][2]int{{0, 1}, {1, 0}, {-3, 4}} {
		if _, err := New(sz[0], sz[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", sz[0], sz[1], err)
		}
	}
}

func TestSetAtRowMajor(t *testing.T) {
	b, _ := New(5, 4)
	b.Set(3, 2, 1, 1)

	if d, a := b.At(3, 2); d != 1 || a != 1 {
		t.Errorf("At(3, 2) = (%d, %d), want (1, 1)", d, a)
	}
	if b.Draw()[2*5+3] != 1 {
		t.Error("draw plane not written at y*width+x")
	}

	// Non-zero values are normalised.
	b.Set(0, 0, 7, 200)
	if d, a := b.At(0, 0); d != 1 || a != 1 {
		t.Errorf("At(0, 0) = (%d, %d), want (1, 1)", d, a)
	}
}

func TestOutOfBounds(t *testing.T) {
	b, _ := New(3, 3)
	b.Fill(1, 1)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		b.Set(p[0], p[1], 0, 0)
		b.SetDraw(p[0], p[1], 0)
		if d, a := b.At(p[0], p[1]); d != 0 || a != 0 {
			t.Errorf("At(%d, %d) = (%d, %d), want (0, 0)", p[0], p[1], d, a)
		}
	}
	for i := range b.Draw() {
		if b.Draw()[i] != 1 || b.Alpha()[i] != 1 {
			t.Fatalf("pixel %d modified by out-of-bounds write", i)
		}
	}
}

func TestSetDrawKeepsAlpha(t *testing.T) {
	b, _ := New(2, 2)
	b.SetDraw(1, 1, 1)
	if d, a := b.At(1, 1); d != 1 || a != 0 {
		t.Errorf("At(1, 1) = (%d, %d), want (1, 0)", d, a)
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	b, _ := New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			b.Set(x, y, uint8((x+y)%2), uint8(x%2))
		}
	}

	tests := []struct {
		name string
		w, h int
	}{
		{"grow", 6, 5},
		{"shrink", 2, 3},
		{"mixed", 6, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nb, err := b.Resize(tt.w, tt.h)
			if err != nil {
				t.Fatalf("Resize error = %v", err)
			}
			for y := 0; y < tt.h; y++ {
				for x := 0; x < tt.w; x++ {
					d, a := nb.At(x, y)
					var wd, wa uint8
					if x < 4 && y < 4 {
						wd, wa = b.At(x, y)
					}
					if d != wd || a != wa {
						t.Errorf("At(%d, %d) = (%d, %d), want (%d, %d)", x, y, d, a, wd, wa)
					}
				}
			}
		})
	}

	if _, err := b.Resize(0, 3); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 3) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestCloneEqual(t *testing.T) {
	b, _ := New(3, 2)
	b.Set(1, 1, 1, 1)
	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("clone not equal to original")
	}
	c.Set(0, 0, 1, 0)
	if b.Equal(c) {
		t.Error("Equal() = true after modifying clone")
	}
	if d, _ := b.At(0, 0); d != 0 {
		t.Error("clone shares storage with original")
	}

	other, _ := New(2, 3)
	if b.Equal(other) {
		t.Error("Equal() = true for different sizes")
	}
}

func TestCopyFromSizeMismatch(t *testing.T) {
	a, _ := New(2, 2)
	b, _ := New(3, 2)
	if a.CopyFrom(b) {
		t.Error("CopyFrom() = true for mismatched sizes")
	}
}

func TestFrozenWritePanics(t *testing.T) {
	b, _ := New(2, 2)
	b.Freeze()
	if !b.Frozen() {
		t.Fatal("Frozen() = false after Freeze")
	}
	defer func() {
		if recover() == nil {
			t.Error("Set on frozen buffer did not panic")
		}
	}()
	b.Set(0, 0, 1, 1)
}

func TestFrozenCloneIsWritable(t *testing.T) {
	b, _ := New(2, 2)
	b.Freeze()
	c := b.Clone()
	if c.Frozen() {
		t.Error("clone of frozen buffer is frozen")
	}
	c.Set(0, 0, 1, 1)
}
