// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// FrameRequester is the host's display-refresh hook. RequestFrame arranges
// for cb to run once on the next refresh tick, on the same goroutine that
// drives the engine.
type FrameRequester interface {
	RequestFrame(cb func())
}

// FrameRequesterFunc adapts a function to FrameRequester.
type FrameRequesterFunc func(cb func())

// RequestFrame calls f(cb).
func (f FrameRequesterFunc) RequestFrame(cb func()) {
	f(cb)
}

// Scheduler coalesces render requests into one call per refresh tick.
//
// Schedule asks the requester for a frame unless one is already pending;
// repeated calls before the tick are no-ops. When the frame fires the
// pending flag is cleared before the render function runs, so a render
// that schedules again gets a new frame.
type Scheduler struct {
	requester FrameRequester
	render    func()
	pending   bool
	epoch     uint64 // invalidates frames dropped by Cancel
}

// NewScheduler creates a scheduler that runs render on frames obtained from
// requester.
func NewScheduler(requester FrameRequester, render func()) *Scheduler {
	return &Scheduler{requester: requester, render: render}
}

// Schedule requests a frame. It reports false if one was already pending.
func (s *Scheduler) Schedule() bool {
	if s.pending {
		return false
	}
	s.pending = true
	epoch := s.epoch
	s.requester.RequestFrame(func() {
		if !s.pending || epoch != s.epoch {
			return
		}
		s.pending = false
		s.render()
	})
	return true
}

// Pending reports whether a frame has been requested but not yet run.
func (s *Scheduler) Pending() bool {
	return s.pending
}

// Cancel drops the pending frame, if any. The host may still invoke the
// callback; it then does nothing.
func (s *Scheduler) Cancel() {
	if s.pending {
		s.pending = false
		s.epoch++
	}
}

// ManualFrames is a FrameRequester driven explicitly by the host, for
// headless use and tests. Callbacks queue up until Advance.
type ManualFrames struct {
	callbacks []func()
}

// RequestFrame queues cb for the next Advance.
func (m *ManualFrames) RequestFrame(cb func()) {
	m.callbacks = append(m.callbacks, cb)
}

// Pending returns the number of queued callbacks.
func (m *ManualFrames) Pending() int {
	return len(m.callbacks)
}

// Advance runs one refresh tick: every callback queued before the call.
// Callbacks requested during the tick wait for the next Advance. It returns
// the number of callbacks run.
func (m *ManualFrames) Advance() int {
	cbs := m.callbacks
	m.callbacks = nil
	for _, cb := range cbs {
		cb()
	}
	return len(cbs)
}
