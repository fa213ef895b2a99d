// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface paints the engine's composite onto host-provided rasters.
//
// A Surface only needs to fill axis-aligned rectangles with a solid colour.
// Paint turns a region of a 1-bit composite into such rectangles at an
// integer zoom factor, drawing transparent pixels as a checkerboard or a
// flat background.
//
// Implementations:
//   - ImageSurface: any draw.Image, filled through golang.org/x/image/draw
//   - Recorder: records FillRect calls, for tests and debugging
//
// Surfaces are not safe for concurrent use.
package surface
