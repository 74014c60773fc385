package watcher

import (
	"sort"
	"sync"
	"time"
)

// Debouncer coalesces rapid filesystem events into one batch per burst.
// Editors commonly save a file in several syscalls; without coalescing every
// save would surface as a handful of events.
type Debouncer struct {
	window time.Duration
	emit   func(paths []string)

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
}

// NewDebouncer creates a debouncer that delivers the accumulated path set,
// sorted, once no new path has arrived for a full window.
func NewDebouncer(window time.Duration, emit func(paths []string)) *Debouncer {
	return &Debouncer{
		window:  window,
		emit:    emit,
		pending: make(map[string]struct{}),
	}
}

// Add records a path and restarts the quiet-period window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[path] = struct{}{}
	if d.timer == nil {
		d.timer = time.AfterFunc(d.window, d.expire)
		return
	}
	d.timer.Stop()
	d.timer.Reset(d.window)
}

// expire delivers the batch once the window elapses with no new paths.
func (d *Debouncer) expire() {
	d.mu.Lock()
	batch := d.take()
	d.timer = nil
	d.mu.Unlock()

	if len(batch) > 0 && d.emit != nil {
		go d.emit(batch)
	}
}

// Flush synchronously delivers anything still pending. Called on shutdown so
// a save right before exit is not silently dropped.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// The timer goroutine is already delivering this batch.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	batch := d.take()
	d.mu.Unlock()

	if len(batch) > 0 && d.emit != nil {
		d.emit(batch)
	}
}

// take drains the pending set. Caller holds the lock.
func (d *Debouncer) take() []string {
	paths := make([]string, 0, len(d.pending))
	for p := range d.pending {
		paths = append(paths, p)
	}
	clear(d.pending)
	sort.Strings(paths)
	return paths
}
