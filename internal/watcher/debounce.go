// Package watcher triggers normalization runs when the collection root changes.
package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of filesystem events into a single run
// trigger after a quiet period. A capture device landing a session folder
// produces many events in quick succession; only the last one matters.
type Debouncer struct {
	delay time.Duration
	fire  func()
	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a Debouncer that invokes fire once the delay has
// elapsed with no further triggers.
func NewDebouncer(delay time.Duration, fire func()) *Debouncer {
	return &Debouncer{delay: delay, fire: fire}
}

// Trigger schedules (or reschedules) the callback. Rapid triggers collapse
// into one firing.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		d.timer = nil
		d.mu.Unlock()

		// Fire outside the lock so the callback can Trigger again.
		if d.fire != nil {
			d.fire()
		}
	})
}

// Stop cancels any pending firing.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a firing is scheduled. Used by tests.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
