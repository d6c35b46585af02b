package console

import "time"

// Message is a single normalized console line. It is never mutated after Append.
type Message struct {
	Seq       uint64
	Timestamp time.Time
	Text      string
}
