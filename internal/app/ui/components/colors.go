package components

import (
	"github.com/charmbracelet/lipgloss"

	"console/internal/app/prefs"
)

// Color palette for the UI with semantic naming
const (
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - focus and titles
	FgMuted   = lipgloss.Color("7")       // Light gray - status text
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text

	// Sunken edge: shadow on the top and left, highlight on the bottom and right
	FgEdgeShadow    = lipgloss.Color("238")
	FgEdgeHighlight = lipgloss.Color("250")

	FgLevelError = lipgloss.Color("9")
	FgLevelWarn  = lipgloss.Color("11")
	FgLevelInfo  = lipgloss.Color("12")
	FgLevelDebug = lipgloss.Color("8")
)

// Palette holds the resolved colours of the current theme
type Palette struct {
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
	Accent     lipgloss.TerminalColor
}

// NewPalette resolves theme colours. Empty values fall back to the defaults.
func NewPalette(theme prefs.Theme) Palette {
	return Palette{
		Foreground: colorOr(theme.Foreground, lipgloss.NoColor{}),
		Background: colorOr(theme.Background, lipgloss.NoColor{}),
		Border:     colorOr(theme.Border, FgBorder),
		Accent:     colorOr(theme.Accent, FgPrimary),
	}
}

func colorOr(value string, fallback lipgloss.TerminalColor) lipgloss.TerminalColor {
	if value == "" {
		return fallback
	}

	return lipgloss.Color(value)
}
