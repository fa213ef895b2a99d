// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render holds the per-frame machinery of the engine.
//
// # Frame pipeline
//
// Mutations record a dirty rect immediately and push their pixel writes to
// a Queue; the Scheduler then asks the host for a refresh tick. On the tick
// the engine drains the queue into the active layer, rebuilds the composite
// if needed, and repaints the DirtyTracker's merged rect.
//
//   - DirtyTracker: clamped dirty rects, merged to one bounding box
//   - Queue / Op: deferred pixel writes as tagged ops with one interpreter
//   - Scheduler: at most one pending frame; FrameRequester is the host hook
//   - ManualFrames: a FrameRequester ticked by hand
//
// Everything here runs on the engine's goroutine; nothing locks.
package render
