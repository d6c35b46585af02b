package console

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Receiver is the ingestion entry point. Each Write call is one message.
// It is safe to use from any goroutine.
type Receiver struct {
	log *Log
}

// NewReceiver creates a Receiver appending to log
func NewReceiver(log *Log) *Receiver {
	return &Receiver{log: log}
}

// Write decodes p and appends it to the log. It never fails.
func (r *Receiver) Write(p []byte) (int, error) {
	r.log.Append(Decode(p))

	return len(p), nil
}

// Receive appends text and reports whether it was stored
func (r *Receiver) Receive(text string) (Message, bool) {
	return r.log.Append(text)
}

// Decode converts producer bytes to a Go string. UTF-8 passes through,
// anything else is read as Windows-1252, the usual legacy producer encoding.
func Decode(p []byte) string {
	if utf8.Valid(p) {
		return string(p)
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(p)
	if err != nil {
		return strings.ToValidUTF8(string(p), string(utf8.RuneError))
	}

	return string(decoded)
}
