package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/monobit"
)

func TestInkRuns(t *testing.T) {
	d := monobit.BitmapData{
		Width:  5,
		Height: 2,
		Pixels: [][]uint8{
			{0, 0, 1, 0, 0},
			{0, 1, 1, 1, 1},
		},
		Alpha: [][]uint8{
			{1, 1, 1, 0, 1},
			{1, 1, 1, 1, 1},
		},
	}
	got := inkRuns(d)
	want := []run{{0, 0, 2}, {4, 0, 1}, {0, 1, 1}}
	if len(got) != len(want) {
		t.Fatalf("inkRuns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("inkRuns()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExportPDF(t *testing.T) {
	e, err := monobit.NewEngine(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	drawScene(e)

	path := filepath.Join(t.TempDir(), "scene.pdf")
	if err := exportPDF(path, e); err != nil {
		t.Fatalf("exportPDF() = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 5 || string(data[:5]) != "%PDF-" {
		t.Errorf("output does not start with a PDF header")
	}
}
