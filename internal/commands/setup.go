package commands

import (
	"context"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/zap"

	"github.com/mangodia/mangodia-bot/internal/serverinfo"
)

// SetupCommand handles the /setup command logic.
// It posts the server rules message and the FAQ embed into the invoking channel.
type SetupCommand struct {
	logger  *zap.Logger
	service *serverinfo.Service
}

// NewSetupCommand creates a new SetupCommand.
// It requires a logger and the serverinfo service.
func NewSetupCommand(logger *zap.Logger, service *serverinfo.Service) Command {
	return &SetupCommand{
		logger:  logger.Named("setup_command"),
		service: service,
	}
}

// Name returns the name of the command.
func (c *SetupCommand) Name() string {
	return "setup"
}

// Description returns the description of the command.
func (c *SetupCommand) Description() string {
	return "Posts the server rules and FAQ in the current channel."
}

// Options returns the command options.
func (c *SetupCommand) Options() []discord.CommandOption {
	return nil // No options for this command
}

// DefaultMemberPermissions restricts the command to members who can manage
// messages in the channel.
func (c *SetupCommand) DefaultMemberPermissions() discord.Permissions {
	return discord.PermissionManageMessages
}

// Execute handles the execution of the /setup command.
func (c *SetupCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	c.logger.Info("Setup command execution started",
		zap.String("channelID", e.ChannelID.String()),
		zap.String("interactionID", e.ID.String()),
	)

	return c.service.HandleSetupInteraction(ctx, s, e)
}
