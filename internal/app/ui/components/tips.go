package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed in the footer
var Tips = []string{
	tipDesc("Send a line from a script with ") + tipKey("console send"),
	tipDesc("Follow the console from another terminal with ") + tipKey("console tail"),
	tipDesc("Run headless with ") + tipKey("console --no-ui"),
	tipDesc("Press ") + tipKey("t") + tipDesc(" to cycle timestamps"),
	tipDesc("Press ") + tipKey("e") + tipDesc(" to change the pane edge"),
	tipDesc("Press ") + tipKey("y") + tipDesc(" to copy the pane text"),
	tipDesc("Press ") + tipKey("n") + tipDesc(" to open another pane"),
}

// Tip returns the tip for the given rotation index
func Tip(index int) string {
	if index < 0 {
		index = -index
	}

	return Tips[index%len(Tips)]
}
