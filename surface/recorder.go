// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// CommandType identifies a recorded surface call.
type CommandType uint8

const (
	CmdClear    CommandType = iota // Clear the whole surface
	CmdFillRect                    // Fill a rectangle
)

// String returns the command name.
func (c CommandType) String() string {
	switch c {
	case CmdClear:
		return "Clear"
	case CmdFillRect:
		return "FillRect"
	default:
		return "Unknown"
	}
}

// Command is one recorded call. Rect is already clipped to the surface.
type Command struct {
	Type  CommandType
	Rect  image.Rectangle
	Color color.Color
}

// Recorder is a Surface that records calls instead of drawing.
type Recorder struct {
	width, height int
	commands      []Command
}

// NewRecorder creates a recording surface of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Width returns the surface width.
func (r *Recorder) Width() int { return r.width }

// Height returns the surface height.
func (r *Recorder) Height() int { return r.height }

// Clear records a clear of the whole surface.
func (r *Recorder) Clear(c color.Color) {
	r.commands = append(r.commands, Command{Type: CmdClear, Rect: Bounds(r), Color: c})
}

// FillRect records rect, clipped to the surface. Empty rects are dropped.
func (r *Recorder) FillRect(rect image.Rectangle, c color.Color) {
	rect = rect.Intersect(Bounds(r))
	if rect.Empty() {
		return
	}
	r.commands = append(r.commands, Command{Type: CmdFillRect, Rect: rect, Color: c})
}

// Commands returns the recorded commands.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Covered returns the bounding box of every recorded command.
func (r *Recorder) Covered() image.Rectangle {
	var u image.Rectangle
	for _, c := range r.commands {
		u = u.Union(c.Rect)
	}
	return u
}

// Reset drops every recorded command.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}
