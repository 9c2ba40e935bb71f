package engine

import (
	"sync"
	"time"
)

// ClockScheduler delivers one-shot ticks for autonomous play
// At most one tick is pending; arming again or cancelling supersedes it
// Each tick carries the generation it was armed with so receivers can drop stale ones
type ClockScheduler struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64

	ticks   chan uint64
	stopped bool
}

// NewClockScheduler creates an idle scheduler with the given tick delay
func NewClockScheduler(interval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		interval: interval,
		ticks:    make(chan uint64, 1),
	}
}

// C returns the tick channel
func (cs *ClockScheduler) C() <-chan uint64 {
	return cs.ticks
}

// Arm cancels any pending tick and schedules a new one, returning its generation
// Returns 0 after Stop
func (cs *ClockScheduler) Arm() uint64 {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.stopped {
		return 0
	}
	cs.cancelLocked()
	gen := cs.gen
	cs.timer = time.AfterFunc(cs.interval, func() { cs.fire(gen) })
	return gen
}

// Cancel drops any pending or undelivered tick
func (cs *ClockScheduler) Cancel() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.cancelLocked()
}

// Pending reports whether a tick is armed and not yet delivered
func (cs *ClockScheduler) Pending() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.timer != nil
}

// Current returns the generation a live tick must carry
func (cs *ClockScheduler) Current() uint64 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.gen
}

// Stop cancels pending work; later Arm calls are no-ops
func (cs *ClockScheduler) Stop() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.cancelLocked()
	cs.stopped = true
}

// cancelLocked advances the generation and drains an undelivered tick
func (cs *ClockScheduler) cancelLocked() {
	if cs.timer != nil {
		cs.timer.Stop()
		cs.timer = nil
	}
	cs.gen++
	select {
	case <-cs.ticks:
	default:
	}
}

// fire runs on the timer goroutine; stale generations are discarded under the lock
func (cs *ClockScheduler) fire(gen uint64) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.stopped || gen != cs.gen {
		return
	}
	cs.timer = nil
	// Buffer is drained on every re-arm, so the live tick always fits
	select {
	case cs.ticks <- gen:
	default:
	}
}
