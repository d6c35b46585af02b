package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"console/internal/app"
	"console/internal/app/cli"
	"console/internal/config"
	"console/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	opts.Apply(cfg)

	if err := initSentry(cfg); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
	}

	defer func() {
		if r := recover(); r != nil {
			sentry.CurrentHub().Recover(r)
			sentry.Flush(config.SentryFlush)
			panic(r)
		}
	}()

	application := createApp(cfg, opts)
	application.Run()
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// initSentry enables crash reporting when a DSN is configured
func initSentry(cfg *config.Config) error {
	if cfg.Sentry.DSN == "" {
		return nil
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     config.AppName + "@" + config.Version,
	})
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, opts *cli.Options) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.StopTimeout(config.ShutdownTimeout),
		fx.Supply(cfg, opts),
		fx.Provide(newLogger(cfg, opts)),
		fx.Invoke(registerSentryFlush),
		app.Module,
	)
}

// newLogger writes application logs into the console panes, or to stdout when there are none.
// Client commands only log problems, which they also print.
func newLogger(cfg *config.Config, opts *cli.Options) func(sink *logger.Sink) logger.Logger {
	return func(sink *logger.Sink) logger.Logger {
		switch {
		case opts.Type != cli.CommandRun:
			return logger.NewLoggerWithOutput(cfg, io.Discard)
		case opts.NoUI:
			return logger.NewLogger(cfg)
		default:
			return logger.NewPanelLogger(cfg, sink)
		}
	}
}

// registerSentryFlush delivers buffered crash reports before the process exits
func registerSentryFlush(lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sentry.Flush(config.SentryFlush)
			return nil
		},
	})
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
