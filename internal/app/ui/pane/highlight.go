package pane

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"

	"console/internal/app/ui/components"
)

type highlightPattern struct {
	pattern *regexp.Regexp
	style   lipgloss.Style
}

// Highlighter colours log levels and identifiers in displayed lines. The text itself is never changed.
type Highlighter struct {
	patterns    []highlightPattern
	uuidPattern *regexp.Regexp
}

func newHighlighter() Highlighter {
	return Highlighter{
		patterns: []highlightPattern{
			{pattern: regexp.MustCompile(`(?i)\b(ERROR|FATAL|ERR|ERE)\b`), style: components.LogLevelErrorStyle},
			{pattern: regexp.MustCompile(`(?i)\b(WARNING|WARN|WRN)\b`), style: components.LogLevelWarnStyle},
			{pattern: regexp.MustCompile(`(?i)\b(INFO|INF)\b`), style: components.LogLevelInfoStyle},
			{pattern: regexp.MustCompile(`(?i)\b(DEBUG|DBG)\b`), style: components.LogLevelDebugStyle},
		},
		uuidPattern: regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`),
	}
}

var defaultHighlighter = newHighlighter()

func (h Highlighter) highlight(line string) string {
	for _, level := range h.patterns {
		if loc := level.pattern.FindStringIndex(line); loc != nil {
			line = line[:loc[0]] + level.style.Render(line[loc[0]:loc[1]]) + line[loc[1]:]
			break
		}
	}

	return h.uuidPattern.ReplaceAllStringFunc(line, func(match string) string {
		return components.UUIDStyle.Render(match)
	})
}

// highlightLine colours the first log level keyword and any UUIDs in line
func highlightLine(line string) string {
	return defaultHighlighter.highlight(line)
}
