package monobit

import "github.com/gogpu/monobit/raster"

// Pattern decides the value written at each pixel by a primitive.
//
// Pattern is a closed set: Solid, Named and Procedural. A nil Pattern means
// "no pattern"; primitives then write the engine's primary colour, except
// SetPixel which writes its literal value.
type Pattern interface {
	resolve(e *Engine) raster.Painter
}

// PatternFunc is a pattern policy: the value at (x, y) given the engine's
// primary and secondary draw bits.
type PatternFunc func(x, y int, primary, secondary uint8) raster.Value

// PatternTable looks up named patterns.
type PatternTable interface {
	Lookup(name string) (PatternFunc, bool)
}

// PatternMap is a PatternTable backed by a map.
type PatternMap map[string]PatternFunc

// Lookup implements PatternTable.
func (m PatternMap) Lookup(name string) (PatternFunc, bool) {
	f, ok := m[name]
	return f, ok && f != nil
}

// Solid writes the same value everywhere.
type Solid raster.Value

func (s Solid) resolve(*Engine) raster.Painter {
	return raster.Solid(raster.Value{Draw: bit(s.Draw), Alpha: bit(s.Alpha)})
}

// Named is a pattern looked up in the engine's PatternTable. Unknown names
// fall back to the solid primary colour.
type Named string

func (n Named) resolve(e *Engine) raster.Painter {
	if e.patterns != nil {
		if f, ok := e.patterns.Lookup(string(n)); ok {
			return Procedural(f).resolve(e)
		}
	}
	e.log().Warn("monobit: unknown pattern, using primary colour", "pattern", string(n))
	return e.primaryPainter()
}

// Procedural is a pattern computed by a function.
type Procedural PatternFunc

func (f Procedural) resolve(e *Engine) raster.Painter {
	if f == nil {
		return e.primaryPainter()
	}
	primary, secondary := e.primary, e.secondary
	return func(x, y int) raster.Value {
		v := f(x, y, primary, secondary)
		return raster.Value{Draw: bit(v.Draw), Alpha: bit(v.Alpha)}
	}
}

// painter resolves p once for a primitive call.
func (e *Engine) painter(p Pattern) raster.Painter {
	if p == nil {
		return e.primaryPainter()
	}
	return p.resolve(e)
}

func (e *Engine) primaryPainter() raster.Painter {
	return raster.Solid(raster.Value{Draw: e.primary, Alpha: 1})
}

func bit(v uint8) uint8 {
	if v != 0 {
		return 1
	}
	return 0
}
