package app

import (
	"go.uber.org/fx"

	"console/internal/app/cli"
	"console/internal/app/console"
	"console/internal/app/logs"
	"console/internal/app/monitor"
	"console/internal/app/prefs"
	"console/internal/app/ui/wire"
	"console/internal/app/watcher"
	"console/internal/config/logger"
)

var Module = fx.Options(
	logger.Module,
	console.Module,
	prefs.Module,
	watcher.Module,
	logs.Module,
	monitor.Module,
	wire.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
