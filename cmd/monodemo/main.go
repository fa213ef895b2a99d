// Command monodemo draws a small scene with the monobit engine and writes
// the painted surface as PNG or BMP, or the composite as a vector PDF page.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/monobit"
	"github.com/gogpu/monobit/raster"
	"github.com/gogpu/monobit/surface"
)

func main() {
	var (
		width   = flag.Int("width", 96, "canvas width in pixels")
		height  = flag.Int("height", 64, "canvas height in pixels")
		zoom    = flag.Int("zoom", 6, "display scale")
		output  = flag.String("output", "monodemo.png", "output file (.png, .bmp or .pdf)")
		checker = flag.Bool("checker", true, "paint transparent pixels as a checkerboard")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		monobit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	out := surface.NewImageSurface(*width**zoom, *height**zoom)
	defer out.Close()

	e, err := monobit.NewEngine(*width, *height,
		monobit.WithSurface(out),
		monobit.WithZoom(*zoom),
		monobit.WithCheckerboard(*checker, 2**zoom),
		monobit.WithPatternTable(demoPatterns),
		monobit.WithSeed(1),
	)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	drawScene(e)
	e.Tick()

	if strings.EqualFold(filepath.Ext(*output), ".pdf") {
		err = exportPDF(*output, e)
	} else {
		err = save(*output, out.Snapshot())
	}
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, %d layers, %d history entries)\n",
		*output, out.Width(), out.Height(), e.LayerCount(), e.HistoryLen())
}

var demoPatterns = monobit.PatternMap{
	"dots": func(x, y int, primary, secondary uint8) raster.Value {
		if x%2 == 0 && y%2 == 0 {
			return raster.Value{Draw: primary, Alpha: 1}
		}
		return raster.Value{Draw: secondary, Alpha: 1}
	},
	"stripes": func(x, y int, primary, _ uint8) raster.Value {
		// Diagonal stripes two pixels wide, transparent between them.
		return raster.Value{Draw: primary, Alpha: uint8((x+y)/2) & 1}
	},
}

func drawScene(e *monobit.Engine) {
	w, h := e.Width(), e.Height()

	// Frame and a dotted fill on the background layer.
	e.DrawRect(0, 0, w-1, h-1, false, nil)
	e.DrawRect(2, 2, w-3, h-3, false, nil)
	e.SaveState()
	e.FloodFill(w/4, h/2, monobit.Named("dots"))

	// Shapes on a transparent layer above it.
	e.AddLayer("shapes")
	e.DrawEllipse(w/2, h/2, h/3, h/3, false, nil)
	e.DrawEllipse(w/2, h/2, h/3+6, h/4, false, nil)
	e.DrawLine(6, h-8, w-8, 8, 3, nil)
	e.DrawRect(w-20, h-18, w-8, h-8, true, monobit.Solid{Draw: 1, Alpha: 1})
	e.SaveState()
	e.FloodFill(w/2, h/2, monobit.Named("stripes"))

	// A spray burst on a third layer.
	e.AddLayer("spray")
	e.Spray(w/5, h/4, h/6, 80, nil)
	e.SaveState()
}

func save(path string, img image.Image) error {
	var encode func(w io.Writer, m image.Image) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".bmp":
		encode = bmp.Encode
	case ".png", "":
		encode = png.Encode
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
