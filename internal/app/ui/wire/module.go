package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"console/internal/app/console"
	"console/internal/app/monitor"
	"console/internal/app/prefs"
	"console/internal/app/ui/host"
	"console/internal/app/ui/pane"
	"console/internal/app/watcher"
	"console/internal/config"
	"console/internal/config/logger"
)

// UI creates a Bubble Tea program hosting the console panes
type UI func(ctx context.Context, panes int) (*tea.Program, error)

// Module provides the message sender and the UI factory
var Module = fx.Options(
	fx.Provide(
		pane.NewSender,
		NewUI,
	),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config  *config.Config
	Log     *console.Log
	Store   *prefs.Store
	Watcher watcher.Watcher
	Monitor monitor.Monitor
	Sender  *pane.Sender
	Logger  logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context, panes int) (*tea.Program, error) {
		if panes <= 0 {
			panes = params.Config.Console.Panes
		}

		model := host.NewModel(host.Options{
			Log:     params.Log,
			Store:   params.Store,
			Out:     params.Sender,
			Clock:   clockwork.NewRealClock(),
			Window:  params.Config.Console.Throttle,
			Panes:   panes,
			Monitor: params.Monitor,
		}, params.Logger)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Sender.Set(p.Send)
		params.Watcher.OnReload(func() {
			params.Sender.Send(host.SettingsReloadedMsg{})
		})

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
