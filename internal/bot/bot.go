package bot

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mangodia/mangodia-bot/internal/commands"
	"github.com/mangodia/mangodia-bot/internal/config"
)

// Bot represents the Discord bot.
type Bot struct {
	Session    *session.Session
	Config     *config.Config
	CmdManager *commands.CommandManager
	Logger     *zap.Logger
}

// NewBotParameters holds dependencies for NewBot.
type NewBotParameters struct {
	fx.In

	Cfg        *config.Config
	S          *session.Session
	CmdManager *commands.CommandManager
	Logger     *zap.Logger
}

// NewBot creates and initializes a new Bot.
// The session, command manager and logger are injected by Fx.
func NewBot(params NewBotParameters) (*Bot, error) {
	if params.S == nil {
		return nil, fmt.Errorf("session provided to NewBot is nil")
	}
	if params.Cfg == nil {
		return nil, fmt.Errorf("config provided to NewBot is nil")
	}
	if params.CmdManager == nil {
		return nil, fmt.Errorf("command manager provided to NewBot is nil")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger provided to NewBot is nil")
	}

	b := &Bot{
		Session:    params.S,
		Config:     params.Cfg,
		CmdManager: params.CmdManager,
		Logger:     params.Logger,
	}

	params.S.AddHandler(func(e *gateway.InteractionCreateEvent) {
		b.handleInteraction(context.Background(), e)
	})

	params.Logger.Info("NewBot created successfully")

	return b, nil
}

// Start registers the slash commands with Discord. Session opening is handled
// by the Fx lifecycle.
func (b *Bot) Start(ctx context.Context) error {
	b.Logger.Info("Executing bot-specific Start logic (e.g., registering commands)...")

	guildIDs := b.guildIDs()
	if len(guildIDs) == 0 {
		b.Logger.Warn("No guild IDs configured, commands will be registered globally")
	}
	b.CmdManager.RegisterCommands(b.Session, guildIDs)

	b.Logger.Info("Slash commands registration process initiated.")

	return nil
}

// Stop handles bot-specific shutdown logic. Session closing is handled by the
// Fx lifecycle.
func (b *Bot) Stop(ctx context.Context) error {
	b.Logger.Info("Executing bot-specific Stop logic...")

	return nil
}

// guildIDs parses the configured guild ID strings, skipping invalid entries.
func (b *Bot) guildIDs() []discord.GuildID {
	var guildIDs []discord.GuildID
	for _, idStr := range b.Config.Discord.GuildIDs {
		sf, err := discord.ParseSnowflake(idStr)
		if err != nil {
			b.Logger.Error("Failed to parse guild ID string to Snowflake",
				zap.String("guildIDStr", idStr), zap.Error(err))
			continue // Skip invalid IDs
		}
		guildIDs = append(guildIDs, discord.GuildID(sf))
	}

	return guildIDs
}
