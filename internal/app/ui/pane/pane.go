package pane

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"

	"console/internal/app/console"
	"console/internal/app/errors"
	"console/internal/app/prefs"
	"console/internal/app/throttle"
	"console/internal/app/ui/components"
)

// Options configures a new pane
type Options struct {
	ID          ID
	Log         *console.Log
	Out         Dispatcher
	Clock       clockwork.Clock
	Window      time.Duration
	Preferences prefs.Preferences
	Palette     components.Palette
	// Copy writes text to the system clipboard. Defaults to clipboard.WriteAll.
	Copy func(text string) error
}

// Pane is one console view over the shared log.
//
// Notify may be called from any goroutine. Everything else runs on the UI goroutine.
type Pane struct {
	id       ID
	log      *console.Log
	out      Dispatcher
	clock    clockwork.Clock
	viewerID console.ViewerID
	throttle *throttle.Throttle
	copyFn   func(string) error

	queued atomic.Bool

	prefs      prefs.Preferences
	palette    components.Palette
	viewport   viewport.Model
	blink      *components.Blink
	content    string
	count      int
	renders    int
	renderedAt time.Time
	width      int
	height     int
	focused    bool
	closed     bool
}

// New opens a pane, registers it with the log and draws the current content
func New(opts Options) *Pane {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	palette := opts.Palette
	if palette == (components.Palette{}) {
		palette = components.NewPalette(prefs.DefaultTheme())
	}

	p := &Pane{
		id:       opts.ID,
		log:      opts.Log,
		out:      opts.Out,
		clock:    clock,
		copyFn:   copyFn,
		prefs:    opts.Preferences,
		palette:  palette,
		viewport: viewport.New(components.DefaultViewportWidth, components.MinPaneHeight),
		blink:    components.NewBlink(),
	}

	p.throttle = throttle.New(opts.Window, clock, p.render, func() {
		p.out.Send(RedrawTimerMsg{ID: p.id})
	})

	p.viewerID = p.log.Register(p)
	p.throttle.Notify()

	return p
}

// ID returns the pane identifier
func (p *Pane) ID() ID {
	return p.id
}

// Notify queues a ContentChangedMsg for this pane. While one is queued further calls are absorbed.
func (p *Pane) Notify() {
	if !p.queued.CompareAndSwap(false, true) {
		return
	}

	go p.out.Send(ContentChangedMsg{ID: p.id})
}

// HandleContentChanged runs the throttled update for a delivered ContentChangedMsg
func (p *Pane) HandleContentChanged() {
	p.queued.Store(false)
	p.throttle.Notify()
}

// HandleRedrawTimer runs a deferred redraw
func (p *Pane) HandleRedrawTimer() {
	p.throttle.Expire()
}

// Close unregisters the pane and cancels any pending redraw. It is safe to call twice.
func (p *Pane) Close() {
	if p.closed {
		return
	}

	p.closed = true
	p.log.Unregister(p.viewerID)
	p.throttle.Stop()
	p.blink.Stop()
}

// Closed reports whether Close was called
func (p *Pane) Closed() bool {
	return p.closed
}

// render rebuilds the pane text from a fresh snapshot and scrolls to the end
func (p *Pane) render() {
	messages := p.log.Snapshot()

	p.content = Render(messages, p.prefs)
	p.count = len(messages)
	p.renders++
	p.renderedAt = p.clock.Now()

	p.refresh()
	p.viewport.GotoBottom()

	if !p.focused && p.count > 0 {
		p.blink.Trigger()
	}
}

// refresh lays the rendered text out for the current viewport width
func (p *Pane) refresh() {
	if p.content == "" {
		p.viewport.SetContent(components.EmptyStateStyle.Render("No messages"))
		return
	}

	lines := wrapLines(DisplayText(p.content), p.viewport.Width)
	for i, line := range lines {
		lines[i] = highlightLine(line)
	}

	p.viewport.SetContent(strings.Join(lines, "\n"))
}

// Preferences returns the pane's current display options
func (p *Pane) Preferences() prefs.Preferences {
	return p.prefs
}

// CycleTimestampMode switches to the next timestamp mode and redraws through the throttle
func (p *Pane) CycleTimestampMode() prefs.Preferences {
	p.prefs.TimestampMode = p.prefs.TimestampMode.Next()
	p.throttle.Notify()

	return p.prefs
}

// ToggleTrailingNewline flips whether the last message ends with a line break
func (p *Pane) ToggleTrailingNewline() prefs.Preferences {
	p.prefs.HideTrailingNewline = !p.prefs.HideTrailingNewline
	p.throttle.Notify()

	return p.prefs
}

// CycleEdgeStyle switches to the next edge. Only the frame changes, the text is not rebuilt.
func (p *Pane) CycleEdgeStyle() prefs.Preferences {
	p.prefs.EdgeStyle = p.prefs.EdgeStyle.Next()
	p.SetSize(p.width, p.height)

	return p.prefs
}

// SetPalette applies new theme colours
func (p *Pane) SetPalette(palette components.Palette) {
	p.palette = palette
}

// SetFocused marks the pane as the target of pane actions
func (p *Pane) SetFocused(focused bool) {
	p.focused = focused

	if focused {
		p.blink.Stop()
	}
}

// Focused reports whether the pane has focus
func (p *Pane) Focused() bool {
	return p.focused
}

// SetSize sets the outer size of the pane, title line and frame included
func (p *Pane) SetSize(width, height int) {
	p.width = width
	p.height = height

	frame := components.EdgeStyle(p.prefs.EdgeStyle, p.palette)

	w := width - frame.GetHorizontalFrameSize()
	if w < components.MinMessageWidth {
		w = components.MinMessageWidth
	}

	h := height - frame.GetVerticalFrameSize() - components.PaneTitleHeight
	if h < 1 {
		h = 1
	}

	atBottom := p.viewport.AtBottom()

	p.viewport.Width = w
	p.viewport.Height = h
	p.refresh()

	if atBottom {
		p.viewport.GotoBottom()
	}
}

// Copy puts the pane text on the clipboard
func (p *Pane) Copy() error {
	if err := p.copyFn(DisplayText(p.content)); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCopy, err)
	}

	return nil
}

// Clear empties the shared log. Every pane redraws.
func (p *Pane) Clear() {
	p.log.Clear()
}

// Text returns the last rendered text, CRLF separated
func (p *Pane) Text() string {
	return p.content
}

// Renders returns how many times the pane text was rebuilt
func (p *Pane) Renders() int {
	return p.renders
}

// Tick advances the activity indicator and reports whether it still animates
func (p *Pane) Tick() bool {
	return p.blink.Update()
}

// Animating reports whether the activity indicator is running
func (p *Pane) Animating() bool {
	return p.blink.IsActive()
}

// Update handles scrolling
func (p *Pane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	p.viewport, cmd = p.viewport.Update(msg)

	return cmd
}

// GotoTop scrolls to the oldest message
func (p *Pane) GotoTop() {
	p.viewport.GotoTop()
}

// GotoBottom scrolls to the newest message
func (p *Pane) GotoBottom() {
	p.viewport.GotoBottom()
}

// View renders the title line and the framed text area
func (p *Pane) View() string {
	title := components.TitleStyle(p.palette, p.focused).Render(fmt.Sprintf("Console %d", p.id))
	indicator := p.blink.Render(lipgloss.NewStyle().Foreground(p.palette.Accent))

	header := lipgloss.JoinHorizontal(lipgloss.Top, title, " ", indicator, " ", components.StatusStyle.Render(p.status()))

	body := components.EdgeStyle(p.prefs.EdgeStyle, p.palette).
		Width(p.viewport.Width).
		Render(p.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (p *Pane) status() string {
	updated := "never"
	if p.renders > 0 {
		updated = humanize.RelTime(p.renderedAt, p.clock.Now(), "ago", "from now")
	}

	return fmt.Sprintf("%s msgs · %s · %s · updated %s",
		humanize.Comma(int64(p.count)),
		p.prefs.TimestampMode,
		p.prefs.EdgeStyle,
		updated,
	)
}
