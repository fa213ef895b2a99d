// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render_test

import (
	"fmt"
	"image"

	"github.com/gogpu/monobit/render"
)

// ExampleScheduler shows several invalidations coalescing into one frame.
func ExampleScheduler() {
	frames := &render.ManualFrames{}
	dirty := render.NewDirtyTracker(32, 32)

	s := render.NewScheduler(frames, func() {
		fmt.Println("repaint", dirty.Merge())
		dirty.Reset()
	})

	for _, r := range []image.Rectangle{
		image.Rect(2, 2, 3, 3),
		image.Rect(10, 4, 12, 8),
		image.Rect(30, 30, 40, 40), // clamped to the canvas
	} {
		dirty.Add(r)
		s.Schedule()
	}
	fmt.Println("frames requested:", frames.Pending())
	frames.Advance()

	// Output:
	// frames requested: 1
	// repaint (2,2)-(32,32)
}
