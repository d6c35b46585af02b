package host

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"console/internal/app/ui/components"
	"console/internal/config"
)

// View renders the header, the stacked panes and the footer
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	info := fmt.Sprintf("%d/%d panes · %s of %s msgs",
		len(m.panes),
		config.MaxPanes,
		humanize.Comma(int64(m.opts.Log.Len())),
		humanize.Comma(int64(m.opts.Log.Capacity())),
	)

	if m.footprint != nil {
		info += " · " + m.footprint.String()
	}

	header := components.RenderHeader(m.width, "console", info)

	views := make([]string, 0, len(m.panes))
	for _, p := range m.panes {
		views = append(views, p.View())
	}

	helpText := m.help.View(m.keys)

	hint := components.Tip(m.tip)
	if m.status != "" {
		hint = components.StatusStyle.Render(m.status)
	}

	footer := components.RenderFooter(m.width, lipgloss.JoinVertical(lipgloss.Left, helpText, hint))

	return lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinVertical(lipgloss.Left, views...), footer)
}
