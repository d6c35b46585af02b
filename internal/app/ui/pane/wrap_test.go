package pane

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_WrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		expected []string
	}{
		{
			name:     "short text no wrap",
			text:     "[09:00:00] ready",
			maxWidth: 20,
			expected: []string{"[09:00:00] ready"},
		},
		{
			name:     "exact fit no wrap",
			text:     "Hello",
			maxWidth: 5,
			expected: []string{"Hello"},
		},
		{
			name:     "wrap at whitespace boundary",
			text:     "Hello world this is a test",
			maxWidth: 15,
			expected: []string{"Hello world", "this is a test"},
		},
		{
			name:     "single long word",
			text:     "verylongword",
			maxWidth: 5,
			expected: []string{"veryl", "ongwo", "rd"},
		},
		{
			name:     "empty text",
			text:     "",
			maxWidth: 10,
			expected: []string{""},
		},
		{
			name:     "non-positive width leaves text alone",
			text:     "anything goes",
			maxWidth: 0,
			expected: []string{"anything goes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wrapText(tt.text, tt.maxWidth))
		})
	}
}

func Test_WrapText_AnsiAndWideCharacters(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
	}{
		{name: "styled level", text: "\x1b[31mERROR\x1b[0m: plugin load failed while reading the manifest of the extension", maxWidth: 30},
		{name: "emoji wider than width", text: "🔥🔥🔥🔥🔥", maxWidth: 3},
		{name: "mixed ascii and emoji", text: "Error: 💥 Failed to connect 🌐", maxWidth: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := wrapText(tt.text, tt.maxWidth)

			assert.Greater(t, len(result), 1)

			for _, line := range result {
				assert.Equal(t, strings.TrimRight(line, " \t"), line, "line should not have trailing whitespace")
			}
		})
	}
}

func Test_WrapLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{name: "keeps line structure", text: "one\ntwo", width: 10, expected: []string{"one", "two"}},
		{name: "keeps empty trailing line", text: "one\n", width: 10, expected: []string{"one", ""}},
		{name: "wraps long lines", text: "short\nhello world again", width: 12, expected: []string{"short", "hello world", "again"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wrapLines(tt.text, tt.width))
		})
	}
}
