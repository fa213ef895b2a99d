// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "testing"

func TestSchedulerCoalesces(t *testing.T) {
	frames := &ManualFrames{}
	renders := 0
	s := NewScheduler(frames, func() { renders++ })

	if !s.Schedule() {
		t.Error("first Schedule() = false, want true")
	}
	for i := 0; i < 5; i++ {
		if s.Schedule() {
			t.Error("Schedule() while pending = true, want false")
		}
	}
	if frames.Pending() != 1 {
		t.Fatalf("requested %d frames, want 1", frames.Pending())
	}
	if !s.Pending() {
		t.Error("Pending() = false before tick")
	}

	frames.Advance()
	if renders != 1 {
		t.Errorf("renders = %d, want 1", renders)
	}
	if s.Pending() {
		t.Error("Pending() = true after tick")
	}
	if frames.Advance() != 0 || renders != 1 {
		t.Error("idle tick rendered")
	}
}

func TestSchedulerRescheduleDuringRender(t *testing.T) {
	frames := &ManualFrames{}
	renders := 0
	var s *Scheduler
	s = NewScheduler(frames, func() {
		renders++
		if renders == 1 {
			s.Schedule()
		}
	})

	s.Schedule()
	frames.Advance()
	if renders != 1 {
		t.Fatalf("renders = %d after first tick, want 1", renders)
	}
	if frames.Pending() != 1 {
		t.Fatalf("frame requested during render not queued for next tick")
	}
	frames.Advance()
	if renders != 2 {
		t.Errorf("renders = %d, want 2", renders)
	}
}

func TestSchedulerCancel(t *testing.T) {
	frames := &ManualFrames{}
	renders := 0
	s := NewScheduler(frames, func() { renders++ })

	s.Schedule()
	s.Cancel()
	if s.Pending() {
		t.Error("Pending() = true after Cancel")
	}
	// A new request after Cancel gets its own frame; the stale callback
	// must not render.
	s.Schedule()
	frames.Advance()
	if renders != 1 {
		t.Errorf("renders = %d, want 1", renders)
	}
}

func TestFrameRequesterFunc(t *testing.T) {
	var got func()
	fr := FrameRequesterFunc(func(cb func()) { got = cb })
	ran := false
	s := NewScheduler(fr, func() { ran = true })
	s.Schedule()
	if got == nil {
		t.Fatal("callback not handed to requester")
	}
	got()
	if !ran {
		t.Error("render not called")
	}
}
