package logger

import (
	"go.uber.org/fx"
)

// Module provides the sink that carries application log lines into the console
var Module = fx.Options(
	fx.Provide(NewSink),
)
