// Package serverinfo provides the server rules and FAQ posting flow.
package serverinfo

import (
	"go.uber.org/fx"
)

// Module provides serverinfo service dependencies.
var Module = fx.Module("serverinfo",
	fx.Provide(
		NewDiscordInteractionManager,
		NewService,
	),
)
