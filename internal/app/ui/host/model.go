package host

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"console/internal/app/console"
	"console/internal/app/monitor"
	"console/internal/app/prefs"
	"console/internal/app/ui/components"
	"console/internal/app/ui/pane"
	"console/internal/config"
	"console/internal/config/logger"
)

// SettingsReloadedMsg signals that the settings file changed on disk
type SettingsReloadedMsg struct{}

// tickMsg drives the activity indicators
type tickMsg time.Time

// footprintMsg carries a fresh sample of the console's own resource usage
type footprintMsg struct {
	footprint monitor.Footprint
	err       error
}

// Options configures the host model
type Options struct {
	Log     *console.Log
	Store   *prefs.Store
	Out     pane.Dispatcher
	Clock   clockwork.Clock
	Window  time.Duration
	Panes   int
	Copy    func(text string) error
	Monitor monitor.Monitor
}

// Model hosts the console panes and routes UI messages to them
type Model struct {
	opts    Options
	log     logger.Logger
	panes   []*pane.Pane
	focus   int
	nextID  pane.ID
	palette components.Palette
	keys    components.KeyMap
	help    help.Model
	width   int
	height  int
	ticking bool
	tip     int
	status  string

	footprint *monitor.Footprint
}

// NewModel opens the persisted pane layout, or opts.Panes panes with the last-used preferences
func NewModel(opts Options, log logger.Logger) Model {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	if opts.Panes <= 0 {
		opts.Panes = config.DefaultPanes
	}

	m := Model{
		opts:    opts,
		log:     log.WithComponent("UI"),
		palette: components.NewPalette(opts.Store.Theme()),
		keys:    components.DefaultKeyMap(),
		help:    help.New(),
		tip:     int(opts.Clock.Now().Unix()),
	}

	layout := opts.Store.Layout()
	if len(layout) > config.MaxPanes {
		layout = layout[:config.MaxPanes]
	}

	if len(layout) == 0 {
		for i := 0; i < opts.Panes; i++ {
			layout = append(layout, opts.Store.Last())
		}
	}

	for _, p := range layout {
		m.openPane(p)
	}

	m.setFocus(0)

	return m
}

// Init catches up on anything that changed before the program started delivering messages
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.panes)+1)

	for _, p := range m.panes {
		id := p.ID()
		cmds = append(cmds, func() tea.Msg { return pane.ContentChangedMsg{ID: id} })
	}

	cmds = append(cmds, m.sampleCmd(0))

	return tea.Batch(cmds...)
}

// Panes returns the open panes in display order
func (m Model) Panes() []*pane.Pane {
	return m.panes
}

// Focused returns the pane that receives pane actions
func (m Model) Focused() *pane.Pane {
	if len(m.panes) == 0 {
		return nil
	}

	return m.panes[m.focus]
}

func (m *Model) openPane(p prefs.Preferences) *pane.Pane {
	m.nextID++

	opened := pane.New(pane.Options{
		ID:          m.nextID,
		Log:         m.opts.Log,
		Out:         m.opts.Out,
		Clock:       m.opts.Clock,
		Window:      m.opts.Window,
		Preferences: p,
		Palette:     m.palette,
		Copy:        m.opts.Copy,
	})

	m.panes = append(m.panes, opened)

	return opened
}

func (m *Model) closeFocused() {
	closing := m.panes[m.focus]
	closing.Close()

	m.panes = append(m.panes[:m.focus:m.focus], m.panes[m.focus+1:]...)

	if m.focus >= len(m.panes) {
		m.focus = len(m.panes) - 1
	}

	m.setFocus(m.focus)
}

func (m *Model) setFocus(index int) {
	if len(m.panes) == 0 {
		return
	}

	m.focus = (index + len(m.panes)) % len(m.panes)

	for i, p := range m.panes {
		p.SetFocused(i == m.focus)
	}
}

func (m Model) find(id pane.ID) *pane.Pane {
	for _, p := range m.panes {
		if p.ID() == id {
			return p
		}
	}

	return nil
}

// remember stores p as the last-used preferences and saves the layout
func (m Model) remember(p prefs.Preferences) {
	if err := m.opts.Store.SetLast(p); err != nil {
		m.log.Warn().Err(err).Msg("Failed to save last-used settings")
	}

	m.saveLayout()
}

func (m Model) saveLayout() {
	layout := make([]prefs.Preferences, len(m.panes))
	for i, p := range m.panes {
		layout[i] = p.Preferences()
	}

	if err := m.opts.Store.SetLayout(layout); err != nil {
		m.log.Warn().Err(err).Msg("Failed to save pane layout")
	}
}

// shutdown saves the layout and detaches every pane from the log
func (m Model) shutdown() {
	m.saveLayout()

	for _, p := range m.panes {
		p.Close()
	}
}

// resize splits the available height between the panes
func (m *Model) resize() {
	if m.width == 0 || len(m.panes) == 0 {
		return
	}

	available := m.height - components.HeaderHeight - components.FooterHeight
	if m.help.ShowAll {
		available -= len(m.keys.FullHelp()[0]) - 1
	}

	per := available / len(m.panes)
	if per < components.MinPaneHeight+components.PaneTitleHeight {
		per = components.MinPaneHeight + components.PaneTitleHeight
	}

	for _, p := range m.panes {
		p.SetSize(m.width, per)
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(components.BlinkTickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sampleCmd measures the console process after delay. It is nil without a monitor.
func (m Model) sampleCmd(delay time.Duration) tea.Cmd {
	if m.opts.Monitor == nil {
		return nil
	}

	mon := m.opts.Monitor
	sample := func() tea.Msg {
		footprint, err := mon.Sample(context.Background())
		return footprintMsg{footprint: footprint, err: err}
	}

	if delay <= 0 {
		return sample
	}

	return tea.Tick(delay, func(time.Time) tea.Msg {
		return sample()
	})
}
