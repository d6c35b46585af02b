package pane

import (
	"strings"

	"console/internal/app/console"
	"console/internal/app/prefs"
)

// Timestamp layouts, rendered in local time
const (
	TimeLayout     = "15:04:05"
	DateTimeLayout = "Mon Jan _2 15:04:05 2006"
)

// Render projects messages into the pane text. Messages are separated by CRLF,
// and a CRLF follows the last one unless hide is set.
func Render(messages []console.Message, p prefs.Preferences) string {
	if len(messages) == 0 {
		return ""
	}

	var b strings.Builder

	for i, msg := range messages {
		if i > 0 {
			b.WriteString(console.LineSeparator)
		}

		b.WriteString(FormatMessage(msg, p.TimestampMode))
	}

	if !p.HideTrailingNewline {
		b.WriteString(console.LineSeparator)
	}

	return b.String()
}

// FormatMessage renders one message with its timestamp prefix
func FormatMessage(msg console.Message, mode prefs.TimestampMode) string {
	switch mode {
	case prefs.TimestampTime:
		return "[" + msg.Timestamp.Local().Format(TimeLayout) + "] " + msg.Text
	case prefs.TimestampDateAndTime:
		return "[" + msg.Timestamp.Local().Format(DateTimeLayout) + "] " + msg.Text
	default:
		return msg.Text
	}
}

// DisplayText converts rendered text to the terminal's line endings
func DisplayText(text string) string {
	return strings.ReplaceAll(text, console.LineSeparator, "\n")
}
