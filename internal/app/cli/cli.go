//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"console/internal/app/console"
	"console/internal/app/errors"
	"console/internal/app/logs"
	"console/internal/app/ui/wire"
	"console/internal/config"
	"console/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// Params contains dependencies for creating the CLI
type Params struct {
	fx.In

	Config    *config.Config
	Options   *Options
	Log       *console.Log
	Server    logs.Server
	Runner    logs.Runner
	Formatter *logs.Formatter
	UI        wire.UI
	TUI       TUI
	Logger    logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	cfg       *config.Config
	options   *Options
	console   *console.Log
	server    logs.Server
	runner    logs.Runner
	formatter *logs.Formatter
	ui        wire.UI
	tui       TUI
	log       logger.Logger
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

// NewCLI creates a new cli instance
func NewCLI(params Params) CLI {
	return &cli{
		cfg:       params.Config,
		options:   params.Options,
		console:   params.Log,
		server:    params.Server,
		runner:    params.Runner,
		formatter: params.Formatter,
		ui:        params.UI,
		tui:       params.TUI,
		log:       params.Logger,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	socketPath := c.cfg.Socket.Path

	switch c.options.Type {
	case CommandHelp:
		return c.handleHelp()
	case CommandVersion:
		return c.handleVersion()
	case CommandSend:
		return c.runner.Send(socketPath, c.options.Args, c.stdin), nil
	case CommandClear:
		return c.runner.Clear(socketPath), nil
	case CommandTail:
		return c.runner.Tail(socketPath), nil
	default:
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if c.options.NoUI {
			return c.runHeadless(ctx)
		}

		return c.runUI(ctx)
	}
}

// runUI opens the panes. A socket that cannot be opened only disables publishing.
func (c *cli) runUI(ctx context.Context) (int, error) {
	if err := c.server.Start(ctx); err != nil {
		c.log.Warn().Err(err).Msg("Publishing over the socket is disabled")
	} else {
		defer c.server.Stop()
	}

	program, err := c.ui(ctx, c.cfg.Console.Panes)
	if err != nil {
		return c.fail(err)
	}

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return c.fail(fmt.Errorf("%w: %w", errors.ErrFailedToRunUI, err))
	}

	return 0, nil
}

// runHeadless prints every message to stdout until ctx is done
func (c *cli) runHeadless(ctx context.Context) (int, error) {
	if err := c.server.Start(ctx); err != nil {
		return c.fail(err)
	}

	defer c.server.Stop()

	c.formatter.RenderBanner(c.stdout, logs.StatusMessage{
		Type:     logs.MessageStatus,
		Version:  config.Version,
		Messages: c.console.Len(),
		Capacity: c.console.Capacity(),
	})

	c.log.Info().Msgf("Accepting messages on %s", c.server.SocketPath())

	logs.NewFollower(c.console, logs.NewPrinter(c.stdout, c.formatter)).Run(ctx)

	return 0, nil
}

// handleHelp displays help information
func (c *cli) handleHelp() (int, error) {
	c.log.Debug().Msg("Displaying help information")

	if err := c.tui.Help(); err != nil {
		return c.fail(err)
	}

	return 0, nil
}

// handleVersion displays version information
func (c *cli) handleVersion() (int, error) {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.stdout, RenderTitle())

	return 0, nil
}

func (c *cli) fail(err error) (int, error) {
	c.log.Error().Err(err).Msg("Command failed")
	fmt.Fprintln(c.stderr, RenderError(err))

	return 1, err
}
