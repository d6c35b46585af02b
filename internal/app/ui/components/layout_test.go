package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"console/internal/config"
)

func Test_RenderLine(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "positive width", width: 10, want: 10},
		{name: "zero width", width: 0, want: 0},
		{name: "negative width", width: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lipgloss.Width(RenderLine(tt.width)))
		})
	}
}

func Test_RenderHeader(t *testing.T) {
	header := RenderHeader(60, "console", "3 panes")

	assert.Contains(t, header, "console")
	assert.Contains(t, header, "3 panes")
	assert.Equal(t, 60, lipgloss.Width(header))
}

func Test_RenderHeader_TruncatesLongTitle(t *testing.T) {
	header := RenderHeader(30, "a very long title that cannot fit in the header", "info")

	assert.Contains(t, header, "…")
	assert.Contains(t, header, "info")
}

func Test_RenderFooter(t *testing.T) {
	footer := RenderFooter(60, "q quit")

	assert.Contains(t, footer, "v"+config.Version)
	assert.Contains(t, footer, "q quit")
}

func Test_truncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "fits", input: "hello", maxWidth: 10, want: "hello"},
		{name: "exact", input: "hello", maxWidth: 5, want: "hello"},
		{name: "truncated", input: "hello world", maxWidth: 6, want: "hello…"},
		{name: "width one", input: "hello", maxWidth: 1, want: "…"},
		{name: "zero width", input: "hello", maxWidth: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.input, tt.maxWidth))
		})
	}
}

func Test_Tip(t *testing.T) {
	assert.Equal(t, Tips[0], Tip(0))
	assert.Equal(t, Tips[1], Tip(len(Tips)+1))
	assert.Equal(t, Tips[2], Tip(-2))
}
