package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type helpModel struct{}

func newHelpModel() helpModel {
	return helpModel{}
}

func (m helpModel) Init() tea.Cmd {
	return nil
}

func (m helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m helpModel) View() string {
	usageSection := sectionHeader.Render("Usage:")
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("console [--panes=N]")+"             Open the console"),
		bodyMedium.Render("  "+commandName.Render("console --no-ui")+"                 Print messages to stdout"),
		bodyMedium.Render("  "+commandName.Render("console send [text...]")+"          Publish a message"),
		bodyMedium.Render("  "+commandName.Render("console clear")+"                   Clear a running console"),
		bodyMedium.Render("  "+commandName.Render("console tail")+"                    Stream a running console"),
		bodyMedium.Render("  "+commandName.Render("console help")+"                    Show help"),
		bodyMedium.Render("  "+commandName.Render("console version")+"                 Show version"),
	)

	examplesSection := sectionHeader.Render("Examples:")
	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+exampleCode.Render("console --panes=2")+"               Open two panes"),
		bodyMedium.Render("  "+exampleCode.Render("console send build finished")+"     Publish one line"),
		bodyMedium.Render("  "+exampleCode.Render("make 2>&1 | console send")+"        Publish stdin as one message"),
		bodyMedium.Render("  "+exampleCode.Render("console tail --socket=/tmp/a.sock")+" Follow another console"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		usageSection,
		usage,
		examplesSection,
		examples,
		RenderHelp(),
	) + "\n"
}
