package cache

import (
	"slices"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) reported ok")
	}
	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Len != 1 || st.Capacity != 4 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	var evicted []int
	c := New[int, int](2)
	c.OnEvict = func(v int) { evicted = append(evicted, v) }

	c.Set(1, 10)
	c.Set(2, 20)
	c.Get(1) // 2 becomes least recently used
	c.Set(3, 30)

	if _, ok := c.Get(2); ok {
		t.Error("entry 2 should have been evicted")
	}
	if _, ok := c.Get(1); !ok {
		t.Error("entry 1 should have survived")
	}
	if !slices.Equal(evicted, []int{20}) {
		t.Errorf("evicted = %v, want [20]", evicted)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestReplaceEvictsOldValue(t *testing.T) {
	var evicted []string
	c := New[int, string](2)
	c.OnEvict = func(v string) { evicted = append(evicted, v) }

	c.Set(1, "old")
	c.Set(1, "new")
	if v, _ := c.Get(1); v != "new" {
		t.Errorf("Get(1) = %q, want new", v)
	}
	if !slices.Equal(evicted, []string{"old"}) {
		t.Errorf("evicted = %v, want [old]", evicted)
	}
}

func TestDeleteAndClear(t *testing.T) {
	n := 0
	c := New[int, int](0)
	c.OnEvict = func(int) { n++ }
	if c.Capacity() != 1 {
		t.Fatalf("Capacity() = %d, want 1", c.Capacity())
	}

	c.Set(1, 1)
	if !c.Delete(1) {
		t.Error("Delete(1) = false, want true")
	}
	if c.Delete(1) {
		t.Error("second Delete(1) = true, want false")
	}

	c.Set(2, 2)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	if n != 2 {
		t.Errorf("OnEvict called %d times, want 2", n)
	}
}
