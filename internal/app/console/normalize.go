package console

import "strings"

const (
	lineBreaks = "\r\n"
	crlf       = "\r\n"
)

// LineSeparator separates the lines of a stored message
const LineSeparator = crlf

// Normalize rewrites line breaks to CRLF and strips trailing breaks.
//
// A run of '\r' followed by '\n' is a single break, a bare '\n' is a break,
// and a run of '\r' not followed by '\n' is dropped without emitting anything.
// An empty result means the message carries no text and must be discarded.
func Normalize(raw string) string {
	var builder strings.Builder

	builder.Grow(len(raw) + len(crlf))

	offset := 0

	for {
		index := strings.IndexAny(raw[offset:], lineBreaks)
		if index < 0 {
			builder.WriteString(raw[offset:])
			break
		}

		builder.WriteString(raw[offset : offset+index])
		offset += index

		for offset < len(raw) && raw[offset] == '\r' {
			offset++
		}

		if offset == len(raw) {
			break
		}

		if raw[offset] == '\n' {
			builder.WriteString(crlf)
			offset++
		}
	}

	return strings.TrimRight(builder.String(), lineBreaks)
}
