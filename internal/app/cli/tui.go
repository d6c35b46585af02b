//go:generate mockgen -source=tui.go -destination=tui_mock.go -package=cli
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TUI shows the interactive screens that are not the console itself
type TUI interface {
	Help() error
}

type tui struct{}

// NewTUI creates a TUI
func NewTUI() TUI {
	return &tui{}
}

// Help shows the help screen until the user dismisses it
func (t *tui) Help() error {
	_, err := tea.NewProgram(newHelpModel()).Run()

	return err
}
