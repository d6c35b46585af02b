package prefs

import (
	"go.uber.org/fx"

	"console/internal/config"
	"console/internal/config/logger"
)

// Module provides the settings store, loaded from the configured settings directory
var Module = fx.Options(
	fx.Provide(newStore),
)

func newStore(cfg *config.Config, log logger.Logger) *Store {
	store := NewStore(cfg.SettingsPath())

	if err := store.Load(); err != nil {
		log.Warn().Err(err).Str("path", store.Path()).Msg("Settings could not be read, using defaults")
	}

	return store
}
