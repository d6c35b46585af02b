package logs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/dustin/go-humanize"

	"console/internal/app/console"
	"console/internal/app/ui/components"
	"console/internal/config"
	"console/internal/config/logger"
)

const (
	minBannerWidth     = 40
	defaultBannerWidth = 80
	continuationIndent = "  "
)

// Formatter renders console messages for a terminal or as JSON lines
type Formatter struct {
	mu         sync.Mutex
	format     string
	color      bool
	timeStyle  lipgloss.Style
	clearStyle lipgloss.Style
}

// NewFormatter creates a Formatter. Colours are used only when stdout is a terminal.
func NewFormatter(cfg *config.Config) *Formatter {
	return newFormatter(cfg.Logging.Format, term.IsTerminal(os.Stdout.Fd()))
}

func newFormatter(format string, color bool) *Formatter {
	return &Formatter{
		format:     format,
		color:      color,
		timeStyle:  lipgloss.NewStyle().Foreground(components.FgBorder),
		clearStyle: lipgloss.NewStyle().Foreground(components.FgMuted).Italic(true),
	}
}

// FormatMessage renders one message. Continuation lines of a multi-line message are indented.
func (f *Formatter) FormatMessage(msg LogMessage) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.format == logger.JSONFormat {
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Sprintf(`{"type":%q,"text":%q}`+"\n", msg.Type, msg.Text)
		}

		return string(data) + "\n"
	}

	stamp := "[" + msg.Timestamp.Local().Format("15:04:05") + "]"
	if f.color {
		stamp = f.timeStyle.Render(stamp)
	}

	lines := strings.Split(msg.Text, console.LineSeparator)

	return stamp + " " + strings.Join(lines, "\n"+continuationIndent) + "\n"
}

// FormatCleared renders the notice printed when the console is cleared
func (f *Formatter) FormatCleared() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.format == logger.JSONFormat {
		return `{"type":"clear"}` + "\n"
	}

	notice := "-- console cleared --"
	if f.color {
		notice = f.clearStyle.Render(notice)
	}

	return notice + "\n"
}

// WriteFormatted writes a formatted message to the given writer
func (f *Formatter) WriteFormatted(w io.Writer, msg LogMessage) {
	fmt.Fprint(w, f.FormatMessage(msg))
}

// WriteCleared writes the clear notice to the given writer
func (f *Formatter) WriteCleared(w io.Writer) {
	fmt.Fprint(w, f.FormatCleared())
}

// RenderBanner writes a connection banner to the given writer
func (f *Formatter) RenderBanner(w io.Writer, status StatusMessage) {
	if f.format == logger.JSONFormat {
		return
	}

	termWidth, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || termWidth < minBannerWidth {
		termWidth = defaultBannerWidth
	}

	info := fmt.Sprintf("%s of %s msgs · v%s",
		humanize.Comma(int64(status.Messages)),
		humanize.Comma(int64(status.Capacity)),
		status.Version,
	)

	fmt.Fprintln(w, components.RenderHeader(termWidth, "console", info))
	fmt.Fprintln(w, components.HelpStyle.Render(" ctrl+c exit"))
}
