package bot

import (
	"context"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"go.uber.org/zap"
)

// handleInteraction dispatches incoming interactions to their command
// handlers. Each command runs on its own goroutine so concurrent invocations
// do not block the gateway event loop or each other.
func (b *Bot) handleInteraction(ctx context.Context, e *gateway.InteractionCreateEvent) {
	switch data := e.Data.(type) {
	case *discord.CommandInteraction:
		b.Logger.Info("Received slash command",
			zap.String("commandName", data.Name),
			zap.String("channelID", e.ChannelID.String()),
		)

		cmd, ok := b.CmdManager.GetCommand(data.Name)
		if !ok {
			b.Logger.Warn("Unknown command", zap.String("commandName", data.Name))
			err := b.Session.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
				Type: api.MessageInteractionWithSource,
				Data: &api.InteractionResponseData{
					Content: option.NewNullableString("Command not found."),
					Flags:   discord.EphemeralMessage,
				},
			})
			if err != nil {
				b.Logger.Error("Failed to respond to interaction for unknown command", zap.Error(err))
			}
			return
		}

		go func() {
			// Commands report their own failures to the invoker; here we
			// only log the outcome.
			if err := cmd.Execute(ctx, b.Session, e, data); err != nil {
				b.Logger.Error("Error executing command",
					zap.String("commandName", data.Name),
					zap.Error(err),
				)
				return
			}
			b.Logger.Info("Command executed successfully", zap.String("commandName", data.Name))
		}()

	default:
		b.Logger.Debug("Received unhandled interaction type", zap.Any("type", e.Data))
	}
}
