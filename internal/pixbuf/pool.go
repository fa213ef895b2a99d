package pixbuf

// Pool recycles buffers of identical dimensions.
//
// Copy-on-write clones and cached composites churn through full-canvas
// buffers; the pool keeps a few of each size around so a drawing session
// does not allocate a new canvas-sized slice pair on every edit.
//
// A Pool is not safe for concurrent use.
type Pool struct {
	buckets map[poolKey][]*Buffer
	maxSize int // max buffers per bucket, 0 = unlimited
}

type poolKey struct {
	width  int
	height int
}

// NewPool creates a pool that keeps at most maxPerBucket buffers per size.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
	}
}

// Get returns a cleared buffer of the given size, reusing a pooled one when
// available. It returns nil for non-positive dimensions.
func (p *Pool) Get(width, height int) *Buffer {
	key := poolKey{width: width, height: height}
	if bucket := p.buckets[key]; len(bucket) > 0 {
		b := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		b.Clear()
		return b
	}
	b, err := New(width, height)
	if err != nil {
		return nil
	}
	return b
}

// Put hands b back to the pool. Nil and frozen buffers are ignored; frozen
// buffers may still be referenced by history snapshots.
func (p *Pool) Put(b *Buffer) {
	if b == nil || b.frozen {
		return
	}
	key := poolKey{width: b.width, height: b.height}
	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, b)
}

// Clone returns an unfrozen copy of b backed by a pooled buffer.
func (p *Pool) Clone(b *Buffer) *Buffer {
	c := p.Get(b.width, b.height)
	c.CopyFrom(b)
	return c
}

// Len returns the number of pooled buffers across all sizes.
func (p *Pool) Len() int {
	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
