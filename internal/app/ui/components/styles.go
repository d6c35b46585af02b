package components

import (
	"github.com/charmbracelet/lipgloss"

	"console/internal/app/prefs"
)

// Common styles shared across UI components
var (
	HeaderStyle = lipgloss.NewStyle()

	FooterStyle = lipgloss.NewStyle()

	FooterHelpStyle = lipgloss.NewStyle().
			Padding(0, 1)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	StatusStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			Italic(true)

	LogLevelErrorStyle = lipgloss.NewStyle().Foreground(FgLevelError).Bold(true)
	LogLevelWarnStyle  = lipgloss.NewStyle().Foreground(FgLevelWarn).Bold(true)
	LogLevelInfoStyle  = lipgloss.NewStyle().Foreground(FgLevelInfo)
	LogLevelDebugStyle = lipgloss.NewStyle().Foreground(FgLevelDebug)
)

// TitleStyle returns the pane title style, highlighted when the pane has focus
func TitleStyle(p Palette, focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	}

	return lipgloss.NewStyle().Foreground(FgMuted)
}

// EdgeStyle returns the frame drawn around a pane's text area
func EdgeStyle(edge prefs.EdgeStyle, p Palette) lipgloss.Style {
	base := lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Background)

	switch edge {
	case prefs.EdgeSunken:
		return base.
			Border(lipgloss.NormalBorder()).
			BorderTopForeground(FgEdgeShadow).
			BorderLeftForeground(FgEdgeShadow).
			BorderBottomForeground(FgEdgeHighlight).
			BorderRightForeground(FgEdgeHighlight)
	case prefs.EdgeGrey:
		return base.
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Border)
	default:
		return base
	}
}

// UUIDStyle dims identifiers so the surrounding text stands out
var UUIDStyle = lipgloss.NewStyle().Foreground(FgMuted).Faint(true)
