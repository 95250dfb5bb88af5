package serverinfo

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"go.uber.org/zap"
)

// DiscordInteractionManager handles direct interactions with the Discord API
// for the setup flow.
type DiscordInteractionManager interface {
	// DeferEphemeralResponse acknowledges an interaction with a deferred,
	// ephemeral response so the invoker sees a pending state.
	DeferEphemeralResponse(ses *session.Session, eventID discord.InteractionID, eventToken string) error
	// SendMessage posts a plain content message to a channel.
	SendMessage(ses *session.Session, channelID discord.ChannelID, content string) (*discord.Message, error)
	// SendEmbed posts a single embed to a channel.
	SendEmbed(ses *session.Session, channelID discord.ChannelID, embed discord.Embed) (*discord.Message, error)
	// AddReaction reacts to a message with the given emoji.
	AddReaction(ses *session.Session, channelID discord.ChannelID, messageID discord.MessageID, emoji string) error
	// SendEphemeralFollowUp sends an ephemeral follow-up message on an
	// acknowledged interaction.
	SendEphemeralFollowUp(ses *session.Session, appID discord.AppID, eventToken, content string) error
}

// NewDiscordInteractionManager creates a new instance of DiscordInteractionManager.
func NewDiscordInteractionManager(logger *zap.Logger) DiscordInteractionManager {
	return &discordInteractionManagerImpl{
		logger: logger.Named("discord_interaction_manager"),
	}
}

type discordInteractionManagerImpl struct {
	logger *zap.Logger
}

// DeferEphemeralResponse acknowledges the interaction without producing a
// channel message.
func (dim *discordInteractionManagerImpl) DeferEphemeralResponse(ses *session.Session, eventID discord.InteractionID, eventToken string) error {
	response := api.InteractionResponse{
		Type: api.DeferredMessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Flags: discord.EphemeralMessage,
		},
	}

	if err := ses.RespondInteraction(eventID, eventToken, response); err != nil {
		dim.logger.Error("Failed to defer interaction response", zap.Error(err))

		return fmt.Errorf("failed to defer interaction response: %w", err)
	}

	return nil
}

// SendMessage posts a plain content message to the channel.
func (dim *discordInteractionManagerImpl) SendMessage(ses *session.Session, channelID discord.ChannelID, content string) (*discord.Message, error) {
	msg, err := ses.SendMessageComplex(channelID, api.SendMessageData{
		Content: content,
	})
	if err != nil {
		dim.logger.Error("Failed to send channel message",
			zap.Error(err),
			zap.String("channelID", channelID.String()),
		)

		return nil, fmt.Errorf("failed to send channel message: %w", err)
	}

	return msg, nil
}

// SendEmbed posts a single embed to the channel.
func (dim *discordInteractionManagerImpl) SendEmbed(ses *session.Session, channelID discord.ChannelID, embed discord.Embed) (*discord.Message, error) {
	msg, err := ses.SendMessageComplex(channelID, api.SendMessageData{
		Embeds: []discord.Embed{embed},
	})
	if err != nil {
		dim.logger.Error("Failed to send channel embed",
			zap.Error(err),
			zap.String("channelID", channelID.String()),
		)

		return nil, fmt.Errorf("failed to send channel embed: %w", err)
	}

	return msg, nil
}

// AddReaction reacts to a message with the given emoji.
func (dim *discordInteractionManagerImpl) AddReaction(ses *session.Session, channelID discord.ChannelID, messageID discord.MessageID, emoji string) error {
	if err := ses.React(channelID, messageID, discord.APIEmoji(emoji)); err != nil {
		return fmt.Errorf("failed to add reaction %q: %w", emoji, err)
	}

	return nil
}

// SendEphemeralFollowUp sends an ephemeral follow-up on the interaction.
func (dim *discordInteractionManagerImpl) SendEphemeralFollowUp(ses *session.Session, appID discord.AppID, eventToken, content string) error {
	_, err := ses.FollowUpInteraction(appID, eventToken, api.InteractionResponseData{
		Content: option.NewNullableString(content),
		Flags:   discord.EphemeralMessage,
	})
	if err != nil {
		dim.logger.Error("Failed to send ephemeral follow-up", zap.Error(err))

		return fmt.Errorf("failed to send ephemeral follow-up: %w", err)
	}

	return nil
}
