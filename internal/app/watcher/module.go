package watcher

import (
	"context"

	"go.uber.org/fx"

	"console/internal/config/logger"
)

// Module provides the settings watcher and ties it to the application lifecycle
var Module = fx.Options(
	fx.Provide(NewWatcher),
	fx.Invoke(register),
)

func register(lc fx.Lifecycle, w Watcher, log logger.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := w.Start(ctx); err != nil {
				log.Warn().Err(err).Msg("Settings will not be reloaded on change")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			w.Close()

			return nil
		},
	})
}
