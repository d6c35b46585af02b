package monitor

import "go.uber.org/fx"

// Module provides the process footprint monitor
var Module = fx.Options(
	fx.Provide(
		NewMonitor,
	),
)
