package monobit

import (
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"

	"github.com/gogpu/monobit/internal/cache"
	"github.com/gogpu/monobit/internal/history"
	"github.com/gogpu/monobit/internal/pixbuf"
	"github.com/gogpu/monobit/render"
	"github.com/gogpu/monobit/surface"
)

// poolBucketSize is the number of spare buffers kept per canvas size.
const poolBucketSize = 8

// Engine is a layered monochrome raster.
//
// An Engine owns a stack of equally sized layers, each a draw+alpha buffer.
// Pixel and shape primitives target the active layer; their writes are
// queued and applied on the next render tick, while flood fill runs
// immediately. The visible layers are merged into a cached composite, and
// only the dirty part of it is repainted to the output surface.
//
// An Engine is not safe for concurrent use. All calls, including the
// frame callbacks handed to a FrameRequester, must come from one goroutine.
type Engine struct {
	width, height int

	layers []*layer
	active int
	nextID int

	pool   *pixbuf.Pool
	queue  *render.Queue
	dirty  *render.DirtyTracker
	frames *render.Scheduler

	composite      *pixbuf.Buffer
	compositeDirty bool
	composites     *cache.Cache[uint64, *pixbuf.Buffer]

	history   *history.Stack[*snapshot]
	nextEntry uint64
	entryID   uint64 // history entry the live state was saved as or restored from
	atEntry   bool   // live state is identical to entryID

	patterns  PatternTable
	primary   uint8
	secondary uint8
	rng       *rand.Rand

	surface      surface.Surface
	surfaceStale bool // clear the surface before the next paint
	style        surface.Style
	logger       *slog.Logger
}

// NewEngine creates an engine with a width x height canvas holding a single
// opaque "Background" layer filled with the secondary colour. The initial
// state is the first history entry.
//
// Example:
//
//	e, err := monobit.NewEngine(64, 64)
//	if err != nil {
//	    return err
//	}
//	e.DrawEllipse(32, 32, 10, 10, false, nil)
//	e.Tick()
func NewEngine(width, height int, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		width:        width,
		height:       height,
		nextID:       1,
		pool:         pixbuf.NewPool(poolBucketSize),
		queue:        render.NewQueue(),
		dirty:        render.NewDirtyTracker(width, height),
		patterns:     o.patterns,
		primary:      0,
		secondary:    1,
		surface:      o.surface,
		surfaceStale: o.surface != nil,
		style:        o.style,
		logger:       o.logger,
	}
	seed := o.seed
	if !o.seeded {
		seed = rand.Uint64()
	}
	e.rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))

	e.composites = cache.New[uint64, *pixbuf.Buffer](o.compositeCache)
	e.composites.OnEvict = e.pool.Put
	e.history = history.New[*snapshot](o.historyLimit)
	e.history.OnDiscard = func(s *snapshot) {
		e.composites.Delete(s.id)
	}
	if o.requester != nil {
		e.frames = render.NewScheduler(o.requester, func() { e.renderFrame() })
	}

	bg := e.newLayer("Background")
	bg.buf.Fill(e.secondary, 1)
	e.layers = []*layer{bg}
	e.composite = e.pool.Get(width, height)
	e.compositeDirty = true
	e.dirty.AddFull()

	e.SaveState()
	e.scheduleRender()
	return e, nil
}

// Width returns the canvas width in pixels.
func (e *Engine) Width() int { return e.width }

// Height returns the canvas height in pixels.
func (e *Engine) Height() int { return e.height }

// Bounds returns the canvas rectangle.
func (e *Engine) Bounds() image.Rectangle {
	return image.Rect(0, 0, e.width, e.height)
}

// SetColors sets the primary and secondary draw bits patterns are evaluated
// with. Non-zero values mean 1.
func (e *Engine) SetColors(primary, secondary uint8) {
	e.primary = bit(primary)
	e.secondary = bit(secondary)
}

// Colors returns the primary and secondary draw bits.
func (e *Engine) Colors() (primary, secondary uint8) {
	return e.primary, e.secondary
}

func (e *Engine) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return Logger()
}

func (e *Engine) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < e.width && y < e.height
}

// activeLayer returns the layer primitives write to.
func (e *Engine) activeLayer() *layer {
	return e.layers[e.active]
}

// writable returns l's buffer, replacing it with a private copy first if it
// is shared with history.
func (e *Engine) writable(l *layer) *pixbuf.Buffer {
	if l.buf.Frozen() {
		l.buf = e.pool.Clone(l.buf)
	}
	return l.buf
}

// enqueue queues op for the active layer and marks r dirty.
func (e *Engine) enqueue(op render.Op, r image.Rectangle) {
	e.queue.Push(op)
	e.atEntry = false
	e.invalidate(r)
}

// drain applies every queued op to the active layer.
func (e *Engine) drain() int {
	if e.queue.Len() == 0 {
		return 0
	}
	n := e.queue.Drain(e.writable(e.activeLayer()))
	e.compositeDirty = true
	return n
}

// invalidate marks r dirty and requests a frame.
func (e *Engine) invalidate(r image.Rectangle) {
	e.dirty.Add(r)
	e.scheduleRender()
}

// invalidateAll marks the composite stale and the whole surface dirty.
func (e *Engine) invalidateAll() {
	e.compositeDirty = true
	e.dirty.AddFull()
	e.scheduleRender()
}

func (e *Engine) scheduleRender() {
	if e.frames != nil {
		e.frames.Schedule()
	}
}
