package pane

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"console/internal/app/console"
	apperrors "console/internal/app/errors"
	"console/internal/app/prefs"
	"console/internal/app/throttle"
	"console/internal/app/ui/components"
)

type recorder struct {
	msgs chan tea.Msg
}

func newRecorder() *recorder {
	return &recorder{msgs: make(chan tea.Msg, 64)}
}

func (r *recorder) Send(msg tea.Msg) {
	r.msgs <- msg
}

// deliver plays the UI loop for one queued message
func (r *recorder) deliver(t *testing.T, p *Pane) tea.Msg {
	t.Helper()

	select {
	case msg := <-r.msgs:
		switch m := msg.(type) {
		case ContentChangedMsg:
			require.Equal(t, p.ID(), m.ID)
			p.HandleContentChanged()
		case RedrawTimerMsg:
			require.Equal(t, p.ID(), m.ID)
			p.HandleRedrawTimer()
		}

		return msg
	case <-time.After(time.Second):
		t.Fatal("expected a message for the UI loop")
	}

	return nil
}

func (r *recorder) expectNone(t *testing.T) {
	t.Helper()

	select {
	case msg := <-r.msgs:
		t.Fatalf("unexpected message %#v", msg)
	case <-time.After(30 * time.Millisecond):
	}
}

type fixture struct {
	clock  *clockwork.FakeClock
	log    *console.Log
	out    *recorder
	copied []string
}

func newFixture() *fixture {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 9, 5, 7, 0, time.Local))

	return &fixture{
		clock: clock,
		log:   console.NewLog(console.MaxMessages, clock),
		out:   newRecorder(),
	}
}

func (f *fixture) open(id ID, window time.Duration, p prefs.Preferences) *Pane {
	return New(Options{
		ID:          id,
		Log:         f.log,
		Out:         f.out,
		Clock:       f.clock,
		Window:      window,
		Preferences: p,
		Palette:     components.NewPalette(prefs.DefaultTheme()),
		Copy: func(text string) error {
			f.copied = append(f.copied, text)
			return nil
		},
	})
}

func Test_New_RendersCurrentContentOnce(t *testing.T) {
	f := newFixture()
	f.log.Append("one")
	f.log.Append("two")

	p := f.open(1, throttle.DefaultWindow, prefs.Defaults())

	assert.Equal(t, 1, p.Renders())
	assert.Equal(t, "[09:05:07] one\r\n[09:05:07] two", p.Text())
	assert.Equal(t, 1, f.log.Viewers())
	f.out.expectNone(t)
}

func Test_Pane_BurstIsCoalesced(t *testing.T) {
	f := newFixture()
	p := f.open(1, throttle.DefaultWindow, prefs.Defaults())

	for i := 0; i < 10; i++ {
		f.log.Append(fmt.Sprintf("message %d", i))
	}

	msg := f.out.deliver(t, p)
	assert.IsType(t, ContentChangedMsg{}, msg)
	f.out.expectNone(t)

	assert.Equal(t, 1, p.Renders(), "inside the window the redraw is deferred")

	f.clock.Advance(throttle.DefaultWindow)

	msg = f.out.deliver(t, p)
	assert.IsType(t, RedrawTimerMsg{}, msg)

	assert.Equal(t, 2, p.Renders())
	assert.Contains(t, p.Text(), "message 0")
	assert.Contains(t, p.Text(), "message 9")
}

func Test_Pane_NotifyAfterWindowRendersImmediately(t *testing.T) {
	f := newFixture()
	p := f.open(1, throttle.DefaultWindow, prefs.Defaults())

	f.clock.Advance(time.Second)
	f.log.Append("late")
	f.out.deliver(t, p)

	assert.Equal(t, 2, p.Renders())
	assert.Equal(t, "[09:05:08] late", p.Text())
}

func Test_Pane_Close(t *testing.T) {
	f := newFixture()
	p := f.open(1, throttle.DefaultWindow, prefs.Defaults())

	f.log.Append("pending")
	f.out.deliver(t, p)
	require.Equal(t, 1, p.Renders())

	p.Close()
	p.Close()

	assert.True(t, p.Closed())
	assert.Equal(t, 0, f.log.Viewers())

	f.clock.Advance(time.Second)
	f.log.Append("after close")
	f.out.expectNone(t)

	p.HandleRedrawTimer()
	p.HandleContentChanged()

	assert.Equal(t, 1, p.Renders(), "a closed pane never renders")
}

func Test_Pane_Preferences(t *testing.T) {
	f := newFixture()
	f.log.Append("hello")

	p := f.open(1, 0, prefs.Defaults())
	require.Equal(t, "[09:05:07] hello", p.Text())

	got := p.CycleTimestampMode()
	assert.Equal(t, prefs.TimestampDateAndTime, got.TimestampMode)
	assert.Equal(t, "[Fri Mar  1 09:05:07 2024] hello", p.Text())

	p.CycleTimestampMode()
	assert.Equal(t, "hello", p.Text())

	got = p.ToggleTrailingNewline()
	assert.False(t, got.HideTrailingNewline)
	assert.Equal(t, "hello\r\n", p.Text())

	renders := p.Renders()

	got = p.CycleEdgeStyle()
	assert.Equal(t, prefs.EdgeSunken, got.EdgeStyle)
	assert.Equal(t, renders, p.Renders(), "changing the edge only restyles")
	assert.Equal(t, got, p.Preferences())
}

func Test_Pane_PreferencesAreThrottled(t *testing.T) {
	f := newFixture()
	p := f.open(1, throttle.DefaultWindow, prefs.Defaults())

	p.CycleTimestampMode()
	assert.Equal(t, 1, p.Renders())

	f.clock.Advance(throttle.DefaultWindow)
	f.out.deliver(t, p)

	assert.Equal(t, 2, p.Renders())
}

func Test_Pane_Copy(t *testing.T) {
	f := newFixture()
	f.log.Append("one")
	f.log.Append("two\nthree")

	p := f.open(1, 0, prefs.Preferences{TimestampMode: prefs.TimestampNone, HideTrailingNewline: true})

	require.NoError(t, p.Copy())
	assert.Equal(t, []string{"one\ntwo\nthree"}, f.copied)
}

func Test_Pane_Copy_Error(t *testing.T) {
	f := newFixture()
	failure := errors.New("no clipboard")

	p := New(Options{
		ID:    1,
		Log:   f.log,
		Out:   f.out,
		Clock: f.clock,
		Copy:  func(string) error { return failure },
	})

	err := p.Copy()
	assert.ErrorIs(t, err, failure)
	assert.ErrorIs(t, err, apperrors.ErrFailedToCopy)
}

func Test_Pane_ClearAffectsEveryPane(t *testing.T) {
	f := newFixture()
	f.log.Append("one")

	first := f.open(1, 0, prefs.Defaults())
	second := f.open(2, 0, prefs.Defaults())

	first.Clear()

	assert.Equal(t, 0, f.log.Len())

	seen := map[ID]bool{}

	for i := 0; i < 2; i++ {
		select {
		case msg := <-f.out.msgs:
			changed, ok := msg.(ContentChangedMsg)
			require.True(t, ok)
			seen[changed.ID] = true
		case <-time.After(time.Second):
			t.Fatal("every pane should be told about the clear")
		}
	}

	assert.True(t, seen[1])
	assert.True(t, seen[2])

	first.HandleContentChanged()
	second.HandleContentChanged()

	assert.Empty(t, first.Text())
	assert.Empty(t, second.Text())
}

func Test_Pane_View(t *testing.T) {
	f := newFixture()
	f.log.Append("hello view")

	p := f.open(3, 0, prefs.Defaults())
	p.SetSize(60, 10)
	p.SetFocused(true)

	view := p.View()

	assert.Contains(t, view, "Console 3")
	assert.Contains(t, view, "hello view")
	assert.Contains(t, view, "1 msgs")
	assert.True(t, p.Focused())
}

func Test_Pane_Tick(t *testing.T) {
	f := newFixture()
	p := f.open(1, 0, prefs.Defaults())

	f.log.Append("background activity")
	f.out.deliver(t, p)

	assert.True(t, p.Tick(), "unfocused pane pulses on new content")

	p.SetFocused(true)
	assert.False(t, p.Tick())
}
