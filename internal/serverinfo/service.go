package serverinfo

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mangodia/mangodia-bot/internal/config"
	"github.com/mangodia/mangodia-bot/internal/gif"
)

const (
	rulesSendFailureMessage = "❌ Sorry, I couldn't post the rules message. Please try again."
	faqSendFailureMessage   = "❌ Sorry, I couldn't post the FAQ embed. Please try again."
)

// Service handles the core logic for the setup flow: posting the rules
// message and the FAQ embed into the invoking channel.
type Service struct {
	logger       *zap.Logger
	cfg          *config.Config
	gifProvider  gif.Provider
	interactions DiscordInteractionManager
}

// NewService creates a new serverinfo Service.
func NewService(
	logger *zap.Logger,
	cfg *config.Config,
	gifProvider gif.Provider,
	interactions DiscordInteractionManager,
) *Service {
	return &Service{
		logger:       logger.Named("serverinfo_service"),
		cfg:          cfg,
		gifProvider:  gifProvider,
		interactions: interactions,
	}
}

// HandleSetupInteraction processes a setup invocation. On success exactly two
// channel messages have been posted: the rules message, then the FAQ embed.
// A failed GIF lookup degrades to an imageless FAQ embed; a failed send is
// reported to the invoker via an ephemeral follow-up and returned.
func (s *Service) HandleSetupInteraction(ctx context.Context, ses *session.Session, e *gateway.InteractionCreateEvent) error {
	logger := s.logger.With(
		zap.String("invocationID", uuid.NewString()),
		zap.String("channelID", e.ChannelID.String()),
		zap.String("user", senderName(e)),
	)
	logger.Info("Setup interaction processing started")

	if err := s.interactions.DeferEphemeralResponse(ses, e.ID, e.Token); err != nil {
		logger.Error("Failed to acknowledge setup interaction", zap.Error(err))

		return fmt.Errorf("failed to acknowledge setup interaction: %w", err)
	}

	rulesMsg, err := s.interactions.SendMessage(ses, e.ChannelID, RulesMessage())
	if err != nil {
		logger.Error("Failed to post rules message", zap.Error(err))
		s.reportSendFailure(ses, e, rulesSendFailureMessage, logger)

		return fmt.Errorf("failed to post rules message: %w", err)
	}
	logger.Info("Rules message posted", zap.String("messageID", rulesMsg.ID.String()))

	gifURL := s.pickGif(ctx, logger)

	faqMsg, err := s.interactions.SendEmbed(ses, e.ChannelID, BuildFAQEmbed(gifURL))
	if err != nil {
		logger.Error("Failed to post FAQ embed", zap.Error(err))
		s.reportSendFailure(ses, e, faqSendFailureMessage, logger)

		return fmt.Errorf("failed to post FAQ embed: %w", err)
	}
	logger.Info("FAQ embed posted",
		zap.String("messageID", faqMsg.ID.String()),
		zap.Bool("hasImage", gifURL != ""),
	)

	s.addReactions(ses, e, rulesMsg.ID, faqMsg.ID, logger)

	if err := s.interactions.SendEphemeralFollowUp(ses, e.AppID, e.Token, setupConfirmation); err != nil {
		// Both channel messages have been delivered at this point; a lost
		// confirmation is not a handler failure.
		logger.Warn("Failed to send setup confirmation", zap.Error(err))
	}

	logger.Info("Setup interaction processing completed successfully")

	return nil
}

// pickGif looks up candidate GIFs and picks one at random. Lookup failures
// and empty result sets degrade to no image.
func (s *Service) pickGif(ctx context.Context, logger *zap.Logger) string {
	query := s.cfg.Gif.SearchQuery
	if query == "" {
		query = gif.DefaultSearchQuery
	}

	urls, err := s.gifProvider.Search(ctx, query)
	if err != nil {
		logger.Warn("GIF lookup failed, FAQ embed goes out without an image",
			zap.Error(err),
			zap.String("query", query),
		)

		return ""
	}
	if len(urls) == 0 {
		logger.Warn("GIF lookup returned no results, FAQ embed goes out without an image",
			zap.String("query", query),
		)

		return ""
	}

	selected := urls[rand.IntN(len(urls))]
	logger.Debug("Selected GIF", zap.String("url", selected), zap.Int("candidates", len(urls)))

	return selected
}

// addReactions decorates the posted messages. Reaction failures are logged
// and never affect the outcome of the flow.
func (s *Service) addReactions(ses *session.Session, e *gateway.InteractionCreateEvent, rulesMsgID, faqMsgID discord.MessageID, logger *zap.Logger) {
	if err := s.interactions.AddReaction(ses, e.ChannelID, rulesMsgID, rulesReaction); err != nil {
		logger.Warn("Failed to react to rules message", zap.Error(err))
	}
	if err := s.interactions.AddReaction(ses, e.ChannelID, faqMsgID, faqReaction); err != nil {
		logger.Warn("Failed to react to FAQ message", zap.Error(err))
	}
}

// reportSendFailure surfaces a delivery failure to the invoker. The follow-up
// is best effort; the original error is what the caller returns.
func (s *Service) reportSendFailure(ses *session.Session, e *gateway.InteractionCreateEvent, message string, logger *zap.Logger) {
	if err := s.interactions.SendEphemeralFollowUp(ses, e.AppID, e.Token, message); err != nil {
		logger.Error("Failed to send error follow-up", zap.Error(err))
	}
}

// senderName resolves the invoking user's name from either the guild member
// or the bare user on the event.
func senderName(e *gateway.InteractionCreateEvent) string {
	switch {
	case e.Member != nil:
		return e.Member.User.Username
	case e.User != nil:
		return e.User.Username
	default:
		return "unknown"
	}
}
