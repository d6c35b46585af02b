package console

import (
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"console/internal/config"
	"console/internal/config/logger"
)

// Module provides the shared console log and its ingestion entry point
var Module = fx.Options(
	fx.Provide(
		func(cfg *config.Config) *Log {
			return NewLog(cfg.Console.Capacity, clockwork.NewRealClock())
		},
		NewReceiver,
	),
	fx.Invoke(bindSink),
)

// bindSink routes application log lines into the console
func bindSink(sink *logger.Sink, receiver *Receiver) {
	sink.Set(receiver)
}
