// Package sched provides a cancelable one-shot timer and a debouncer that
// coalesces rapid triggers so only the most recent one fires.
package sched

import (
	"sync"
	"time"
)

// Handle identifies a scheduled call so it can be canceled before it fires.
type Handle struct {
	timer *time.Timer
}

// Schedule runs fn once after delay on its own goroutine.
func Schedule(delay time.Duration, fn func()) *Handle {
	return &Handle{timer: time.AfterFunc(delay, fn)}
}

// Cancel stops a scheduled call. It reports false when the call already fired
// or was canceled before. Canceling a nil handle is a no-op.
func (h *Handle) Cancel() bool {
	if h == nil || h.timer == nil {
		return false
	}
	return h.timer.Stop()
}

// Debouncer retains at most one pending call. Each Trigger cancels the
// previous pending call, so within a burst of triggers only the last one
// fires, delay after the burst ends.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	active *Handle
}

// NewDebouncer creates a debouncer with the given coalescing delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, replacing any pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.active.Cancel()
	d.active = Schedule(d.delay, fn)
}

// Cancel drops the pending call, if any. Calls already in flight are not
// interrupted.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.active.Cancel()
	d.active = nil
}
