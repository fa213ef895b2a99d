package main

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/monobit"
)

// pdfMargin is the page margin in millimetres.
const pdfMargin = 10.0

// run is a horizontal span of opaque draw-0 pixels on row y.
type run struct {
	x, y, n int
}

// inkRuns returns the opaque black spans of d, row by row.
func inkRuns(d monobit.BitmapData) []run {
	var runs []run
	for y := 0; y < d.Height; y++ {
		start := -1
		for x := 0; x <= d.Width; x++ {
			ink := x < d.Width && d.Alpha[y][x] != 0 && d.Pixels[y][x] == 0
			switch {
			case ink && start < 0:
				start = x
			case !ink && start >= 0:
				runs = append(runs, run{x: start, y: y, n: x - start})
				start = -1
			}
		}
	}
	return runs
}

// exportPDF writes the composite as vector rectangles on an A4 page, scaled
// to fit inside the margins.
func exportPDF(path string, e *monobit.Engine) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	pw, ph := p.GetPageSize()

	d := e.GetBitmapData()
	cell := min((pw-2*pdfMargin)/float64(d.Width), (ph-2*pdfMargin)/float64(d.Height))

	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(0.2)
	p.Rect(pdfMargin, pdfMargin, cell*float64(d.Width), cell*float64(d.Height), "D")

	p.SetFillColor(0, 0, 0)
	for _, r := range inkRuns(d) {
		p.Rect(pdfMargin+cell*float64(r.x), pdfMargin+cell*float64(r.y), cell*float64(r.n), cell, "F")
	}
	return p.OutputFileAndClose(path)
}
