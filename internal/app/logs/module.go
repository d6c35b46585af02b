package logs

import "go.uber.org/fx"

// Module provides the socket server and the client-side commands
var Module = fx.Options(
	fx.Provide(
		NewServer,
		NewFormatter,
		NewClient,
		NewRunner,
	),
)
