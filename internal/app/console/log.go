package console

import (
	"sync"

	"github.com/jonboulle/clockwork"
)

// MaxMessages is the default number of messages kept in memory
const MaxMessages = 200

type registration struct {
	id     ViewerID
	viewer Viewer
}

// Log is the bounded message buffer shared by every open console pane
type Log struct {
	mu       sync.Mutex
	clock    clockwork.Clock
	entries  []Message // ring buffer
	head     int       // index of the oldest message
	count    int
	viewers  []registration
	nextID   ViewerID
	capacity int
	seq      uint64 // sequence of the last appended message
	cleared  uint64 // number of Clear calls
}

// NewLog creates an empty log holding at most capacity messages
func NewLog(capacity int, clock clockwork.Clock) *Log {
	if capacity <= 0 {
		capacity = MaxMessages
	}

	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Log{
		clock:    clock,
		entries:  make([]Message, capacity),
		capacity: capacity,
	}
}

// Append normalizes raw and stores it, evicting the oldest message when full.
// Registered viewers are notified after the lock is released.
// It reports false, without notifying, when nothing is left after normalization.
func (l *Log) Append(raw string) (Message, bool) {
	text := Normalize(raw)
	if text == "" {
		return Message{}, false
	}

	l.mu.Lock()

	l.seq++
	msg := Message{Seq: l.seq, Timestamp: l.clock.Now(), Text: text}

	if l.count < l.capacity {
		l.entries[(l.head+l.count)%l.capacity] = msg
		l.count++
	} else {
		l.entries[l.head] = msg
		l.head = (l.head + 1) % l.capacity
	}

	viewers := l.viewersLocked()

	l.mu.Unlock()

	notify(viewers)

	return msg, true
}

// Clear removes every message and notifies all viewers
func (l *Log) Clear() {
	l.mu.Lock()

	for i := range l.entries {
		l.entries[i] = Message{}
	}

	l.head = 0
	l.count = 0
	l.cleared++

	viewers := l.viewersLocked()

	l.mu.Unlock()

	notify(viewers)
}

// Snapshot returns a copy of the messages, oldest first
func (l *Log) Snapshot() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Message, l.count)
	for i := 0; i < l.count; i++ {
		out[i] = l.entries[(l.head+i)%l.capacity]
	}

	return out
}

// Since returns the stored messages appended after seq, oldest first.
// Messages already evicted are skipped.
func (l *Log) Since(seq uint64) []Message {
	messages, _ := l.Tail(seq)

	return messages
}

// Tail is Since together with the generation the messages belong to, read under one lock
func (l *Log) Tail(seq uint64) ([]Message, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Message

	for i := 0; i < l.count; i++ {
		msg := l.entries[(l.head+i)%l.capacity]
		if msg.Seq > seq {
			out = append(out, msg)
		}
	}

	return out, l.cleared
}

// Seq returns the sequence number of the last appended message, evicted or cleared ones included
func (l *Log) Seq() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.seq
}

// Generation returns a counter that changes every time the log is cleared
func (l *Log) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.cleared
}

// Len returns the number of stored messages
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.count
}

// Capacity returns the maximum number of stored messages
func (l *Log) Capacity() int {
	return l.capacity
}

// Register adds a viewer and returns its registration id
func (l *Log) Register(v Viewer) ViewerID {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	l.viewers = append(l.viewers, registration{id: l.nextID, viewer: v})

	return l.nextID
}

// Unregister removes a viewer. Unknown ids are ignored.
func (l *Log) Unregister(id ViewerID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, reg := range l.viewers {
		if reg.id == id {
			l.viewers = append(l.viewers[:i:i], l.viewers[i+1:]...)
			return
		}
	}
}

// Viewers returns the number of registered viewers
func (l *Log) Viewers() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.viewers)
}

// viewersLocked copies the viewer list so fan-out can run without the lock
func (l *Log) viewersLocked() []Viewer {
	out := make([]Viewer, len(l.viewers))
	for i, reg := range l.viewers {
		out[i] = reg.viewer
	}

	return out
}

func notify(viewers []Viewer) {
	for _, v := range viewers {
		v.Notify()
	}
}
