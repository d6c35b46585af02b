package logs

import (
	"context"

	"console/internal/app/console"
)

// FollowHandler receives log changes from a Follower
type FollowHandler interface {
	Message(msg console.Message)
	Cleared(generation uint64)
}

// Follower tails a console log from its own goroutine.
// It is registered as a viewer, so the producer only pays for a non-blocking signal.
type Follower struct {
	log        *console.Log
	handler    FollowHandler
	signal     chan struct{}
	lastSeq    uint64
	generation uint64
}

// NewFollower creates a follower that replays the stored messages first
func NewFollower(log *console.Log, handler FollowHandler) *Follower {
	return &Follower{
		log:        log,
		handler:    handler,
		signal:     make(chan struct{}, 1),
		generation: log.Generation(),
	}
}

// SkipExisting makes the follower ignore messages stored before Run
func (f *Follower) SkipExisting() {
	messages, generation := f.log.Tail(0)
	if len(messages) > 0 {
		f.lastSeq = messages[len(messages)-1].Seq
	}

	f.generation = generation
}

// Notify implements console.Viewer
func (f *Follower) Notify() {
	select {
	case f.signal <- struct{}{}:
	default:
	}
}

// Run delivers changes until ctx is done
func (f *Follower) Run(ctx context.Context) {
	id := f.log.Register(f)
	defer f.log.Unregister(id)

	f.drain()

	for {
		select {
		case <-ctx.Done():
			return
		case <-f.signal:
			f.drain()
		}
	}
}

func (f *Follower) drain() {
	messages, generation := f.log.Tail(f.lastSeq)

	if generation != f.generation {
		f.generation = generation
		f.handler.Cleared(generation)
	}

	for _, msg := range messages {
		f.handler.Message(msg)
		f.lastSeq = msg.Seq
	}
}
