package monobit

import (
	"image/color"
	"log/slog"

	"github.com/gogpu/monobit/render"
	"github.com/gogpu/monobit/surface"
)

// Defaults for NewEngine.
const (
	DefaultHistoryLimit   = 50
	DefaultCompositeCache = 8
	DefaultZoom           = 1
	DefaultTileSize       = 4
)

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Defaults: 50 history entries, zoom 1, checkerboard background
//	e, err := monobit.NewEngine(64, 64)
//
//	// Paint onto an image at 8x, driven by the host's refresh callback
//	e, err := monobit.NewEngine(64, 64,
//	    monobit.WithSurface(surface.NewImageSurface(512, 512)),
//	    monobit.WithZoom(8),
//	    monobit.WithFrameRequester(host),
//	)
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	historyLimit   int
	compositeCache int
	patterns       PatternTable
	requester      render.FrameRequester
	surface        surface.Surface
	style          surface.Style
	logger         *slog.Logger
	seed           uint64
	seeded         bool
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	st := surface.DefaultStyle()
	st.Zoom = DefaultZoom
	st.TileSize = DefaultTileSize
	return options{
		historyLimit:   DefaultHistoryLimit,
		compositeCache: DefaultCompositeCache,
		style:          st,
	}
}

// WithHistoryLimit bounds the number of undo entries. Values below 1 are
// treated as 1.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		o.historyLimit = n
	}
}

// WithCompositeCache sets how many composites of past history entries are
// kept for fast undo/redo. Values below 1 are treated as 1.
func WithCompositeCache(n int) Option {
	return func(o *options) {
		o.compositeCache = n
	}
}

// WithPatternTable injects the table Named patterns are resolved against.
//
// Example:
//
//	table := monobit.PatternMap{
//	    "checker": func(x, y int, p, s uint8) raster.Value {
//	        if (x+y)&1 == 0 {
//	            return raster.Value{Draw: p, Alpha: 1}
//	        }
//	        return raster.Value{Draw: s, Alpha: 1}
//	    },
//	}
//	e, _ := monobit.NewEngine(64, 64, monobit.WithPatternTable(table))
//	e.FloodFill(10, 10, monobit.Named("checker"))
func WithPatternTable(t PatternTable) Option {
	return func(o *options) {
		o.patterns = t
	}
}

// WithFrameRequester makes the engine schedule its own render ticks through
// r. Without one, the host calls Tick.
func WithFrameRequester(r render.FrameRequester) Option {
	return func(o *options) {
		o.requester = r
	}
}

// WithSurface sets the output surface render ticks paint to.
func WithSurface(s surface.Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithZoom sets the integer display scale. Values below 1 are treated as 1.
func WithZoom(zoom int) Option {
	return func(o *options) {
		o.style.Zoom = zoom
	}
}

// WithCheckerboard selects how transparent pixels are painted: a
// checkerboard of tileSize surface pixels when on, the flat background
// colour otherwise.
func WithCheckerboard(on bool, tileSize int) Option {
	return func(o *options) {
		o.style.Checkerboard = on
		o.style.TileSize = tileSize
	}
}

// WithBackground sets the flat background colour for transparent pixels.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.style.Background = c
	}
}

// WithPalette sets the colours the draw bits 0 and 1 are painted with.
func WithPalette(p surface.Palette) Option {
	return func(o *options) {
		o.style.Palette = p
	}
}

// WithLogger sets a logger for this engine only, overriding the package
// logger set by SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSeed seeds the spray tool's random source, making sprays
// reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}
