package host

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"console/internal/app/ui/components"
	"console/internal/app/ui/pane"
	"console/internal/config"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()

		return m, nil

	case pane.ContentChangedMsg:
		p := m.find(msg.ID)
		if p == nil {
			return m, nil
		}

		p.HandleContentChanged()

		return m.startTicking()

	case pane.RedrawTimerMsg:
		p := m.find(msg.ID)
		if p == nil {
			return m, nil
		}

		p.HandleRedrawTimer()

		return m.startTicking()

	case SettingsReloadedMsg:
		m.palette = components.NewPalette(m.opts.Store.Theme())

		for _, p := range m.panes {
			p.SetPalette(m.palette)
		}

		m.resize()
		m.log.Debug().Msg("Theme reloaded")

		return m, nil

	case footprintMsg:
		if msg.err != nil {
			m.log.Debug().Err(msg.err).Msg("Failed to sample process footprint")
		} else {
			m.footprint = &msg.footprint
		}

		return m, m.sampleCmd(config.MonitorInterval)

	case tickMsg:
		animating := false

		for _, p := range m.panes {
			if p.Tick() {
				animating = true
			}
		}

		if !animating {
			m.ticking = false
			return m, nil
		}

		return m, tickCmd()
	}

	return m, nil
}

func (m Model) startTicking() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}

	for _, p := range m.panes {
		if p.Animating() {
			m.ticking = true
			return m, tickCmd()
		}
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()

	case key.Matches(msg, m.keys.NextPane):
		m.setFocus(m.focus + 1)
		m.tip++

	case key.Matches(msg, m.keys.PrevPane):
		m.setFocus(m.focus - 1)

	case key.Matches(msg, m.keys.NewPane):
		if len(m.panes) >= config.MaxPanes {
			m.status = "pane limit reached"
			return m, nil
		}

		opened := m.openPane(m.opts.Store.Last())
		m.setFocus(len(m.panes) - 1)
		m.resize()
		m.saveLayout()
		m.log.Debug().Msgf("Opened pane %d", opened.ID())

	case key.Matches(msg, m.keys.ClosePane):
		if len(m.panes) == 1 {
			m.status = "the last pane cannot be closed"
			return m, nil
		}

		m.closeFocused()
		m.resize()
		m.saveLayout()

	default:
		return m.handlePaneKey(msg)
	}

	return m, nil
}

// handlePaneKey applies an action to the focused pane
func (m Model) handlePaneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.Focused()
	if p == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Timestamps):
		m.remember(p.CycleTimestampMode())
		m.status = "timestamps: " + p.Preferences().TimestampMode.String()

	case key.Matches(msg, m.keys.EdgeStyle):
		m.remember(p.CycleEdgeStyle())
		m.status = "edge: " + p.Preferences().EdgeStyle.String()

	case key.Matches(msg, m.keys.TrailingNewline):
		hidden := p.ToggleTrailingNewline().HideTrailingNewline
		m.remember(p.Preferences())

		m.status = "trailing newline shown"
		if hidden {
			m.status = "trailing newline hidden"
		}

	case key.Matches(msg, m.keys.Copy):
		if err := p.Copy(); err != nil {
			m.log.Warn().Err(err).Msg("Failed to copy console text")
			m.status = "copy failed"

			return m, nil
		}

		m.status = "copied to clipboard"

	case key.Matches(msg, m.keys.Clear):
		p.Clear()
		m.status = "console cleared"

	case key.Matches(msg, m.keys.Top):
		p.GotoTop()

	case key.Matches(msg, m.keys.Bottom):
		p.GotoBottom()

	default:
		return m, p.Update(msg)
	}

	return m, nil
}
