package logs

import (
	"io"

	"console/internal/app/console"
)

// Printer writes followed console changes to w, used when running without the UI
type Printer struct {
	w         io.Writer
	formatter *Formatter
}

// NewPrinter creates a Printer
func NewPrinter(w io.Writer, formatter *Formatter) *Printer {
	return &Printer{w: w, formatter: formatter}
}

// Message implements FollowHandler
func (p *Printer) Message(msg console.Message) {
	p.formatter.WriteFormatted(p.w, toWire(msg))
}

// Cleared implements FollowHandler
func (p *Printer) Cleared(uint64) {
	p.formatter.WriteCleared(p.w)
}
