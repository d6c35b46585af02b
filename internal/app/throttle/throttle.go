package throttle

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/looplab/fsm"
)

// DefaultWindow is the minimum interval between two renders of one pane
const DefaultWindow = 250 * time.Millisecond

// FSM states
const (
	Idle    = "idle"
	Pending = "pending"
)

// FSM events
const (
	Schedule = "schedule"
	Fire     = "fire"
)

// Throttle coalesces content-changed notifications into at most one render per window.
//
// It is not safe for concurrent use: Notify, Expire and Stop must all run on the
// goroutine that owns the pane. When a render has to be deferred the timer does not
// render itself, it calls post, which is expected to queue an Expire call back onto
// that goroutine.
type Throttle struct {
	clock      clockwork.Clock
	window     time.Duration
	render     func()
	post       func()
	machine    *fsm.FSM
	timer      clockwork.Timer
	lastRender time.Time
	rendered   bool
	stopped    bool
}

// New creates a throttle in the Idle state that has never rendered
func New(window time.Duration, clock clockwork.Clock, render, post func()) *Throttle {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Throttle{
		clock:   clock,
		window:  window,
		render:  render,
		post:    post,
		machine: newMachine(),
	}
}

func newMachine() *fsm.FSM {
	return fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: Schedule, Src: []string{Idle}, Dst: Pending},
			{Name: Fire, Src: []string{Pending}, Dst: Idle},
		},
		fsm.Callbacks{},
	)
}

// Notify reports that content changed. It renders at once when the window since
// the last render has elapsed, otherwise it arms a single timer for the remainder.
// Notifications while a timer is armed are absorbed by it.
func (t *Throttle) Notify() {
	if t.stopped || t.machine.Is(Pending) {
		return
	}

	elapsed := t.clock.Since(t.lastRender)

	if !t.rendered || elapsed >= t.window {
		t.renderNow()
		return
	}

	if err := t.machine.Event(context.Background(), Schedule); err != nil {
		return
	}

	t.timer = t.clock.AfterFunc(t.window-elapsed, t.post)
}

// Expire handles the deferred timer once it has been queued back onto the owning goroutine
func (t *Throttle) Expire() {
	if t.stopped || !t.machine.Is(Pending) {
		return
	}

	if err := t.machine.Event(context.Background(), Fire); err != nil {
		return
	}

	t.timer = nil
	t.renderNow()
}

// Stop cancels a pending timer. Nothing renders after Stop.
func (t *Throttle) Stop() {
	t.stopped = true

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// State returns the current FSM state
func (t *Throttle) State() string {
	return t.machine.Current()
}

// LastRender returns when the last render happened and whether one happened at all
func (t *Throttle) LastRender() (time.Time, bool) {
	return t.lastRender, t.rendered
}

func (t *Throttle) renderNow() {
	t.render()
	t.lastRender = t.clock.Now()
	t.rendered = true
}
