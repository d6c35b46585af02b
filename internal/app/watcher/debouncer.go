package watcher

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Debouncer coalesces a burst of file events into one callback after a quiet period
type Debouncer interface {
	Trigger(name string)
	Stop()
}

type debouncer struct {
	clock    clockwork.Clock
	delay    time.Duration
	callback func(names []string)
	timer    clockwork.Timer
	pending  map[string]struct{}
	mu       sync.Mutex
	stopped  bool
}

// NewDebouncer creates a Debouncer that calls callback once events stop arriving for delay
func NewDebouncer(clock clockwork.Clock, delay time.Duration, callback func(names []string)) Debouncer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &debouncer{
		clock:    clock,
		delay:    delay,
		callback: callback,
		pending:  make(map[string]struct{}),
	}
}

// Trigger records a changed file and restarts the quiet period
func (d *debouncer) Trigger(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending[name] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = d.clock.AfterFunc(d.delay, d.flush)
}

// Stop cancels any pending callback. Later triggers are ignored.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	clear(d.pending)
}

func (d *debouncer) flush() {
	d.mu.Lock()

	if d.stopped || len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}

	names := make([]string, 0, len(d.pending))
	for name := range d.pending {
		names = append(names, name)
	}

	clear(d.pending)
	d.timer = nil

	d.mu.Unlock()

	d.callback(names)
}
