package pixbuf

import "testing"

func TestPoolGetPut(t *testing.T) {
	pool := NewPool(2)

	b := pool.Get(8, 8)
	if b == nil {
		t.Fatal("Get returned nil")
	}
	b.Fill(1, 1)
	pool.Put(b)
	if pool.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", pool.Len())
	}

	got := pool.Get(8, 8)
	if got != b {
		t.Error("Get did not reuse pooled buffer")
	}
	if d, a := got.At(3, 3); d != 0 || a != 0 {
		t.Errorf("reused buffer not cleared: At(3, 3) = (%d, %d)", d, a)
	}
}

func TestPoolBucketLimit(t *testing.T) {
	pool := NewPool(2)
	for i := 0; i < 5; i++ {
		b, _ := New(4, 4)
		pool.Put(b)
	}
	if pool.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pool.Len())
	}
}

func TestPoolIgnoresFrozen(t *testing.T) {
	pool := NewPool(0)
	b, _ := New(4, 4)
	b.Freeze()
	pool.Put(b)
	pool.Put(nil)
	if pool.Len() != 0 {
		t.Errorf("Len() = %d, want 0", pool.Len())
	}
}

func TestPoolInvalidSize(t *testing.T) {
	if NewPool(1).Get(0, 4) != nil {
		t.Error("Get(0, 4) should return nil")
	}
}

func TestPoolClone(t *testing.T) {
	pool := NewPool(4)
	src, _ := New(3, 3)
	src.Set(2, 1, 1, 1)
	src.Freeze()

	c := pool.Clone(src)
	if !c.Equal(src) {
		t.Error("pooled clone differs from source")
	}
	if c.Frozen() {
		t.Error("pooled clone is frozen")
	}
}
