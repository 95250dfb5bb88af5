package commands

import (
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CommandManagerParams holds the dependencies for the CommandManager.
type CommandManagerParams struct {
	fx.In

	ApplicationID discord.AppID
	Logger        *zap.Logger
	Commands      []Command `group:"commands"`
}

// CommandManager handles command lookup and the registration of slash
// commands with Discord.
type CommandManager struct {
	applicationID discord.AppID
	logger        *zap.Logger
	commands      map[string]Command
}

// NewCommandManager creates a new CommandManager from the provided commands.
func NewCommandManager(params CommandManagerParams) *CommandManager {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cmds := make(map[string]Command, len(params.Commands))
	for _, cmd := range params.Commands {
		if cmd == nil {
			continue
		}
		if _, exists := cmds[cmd.Name()]; exists {
			logger.Warn("Duplicate command name, keeping the first registration",
				zap.String("commandName", cmd.Name()))
			continue
		}
		cmds[cmd.Name()] = cmd
	}
	logger.Info("Creating new CommandManager", zap.Int("commandCount", len(cmds)))

	return &CommandManager{
		applicationID: params.ApplicationID,
		logger:        logger,
		commands:      cmds,
	}
}

// GetCommand retrieves a registered command by its name.
func (cm *CommandManager) GetCommand(name string) (Command, bool) {
	cmd, ok := cm.commands[name]
	return cmd, ok
}

// RegisterCommands registers all loaded commands with Discord. With an empty
// guild list the commands are registered globally instead.
func (cm *CommandManager) RegisterCommands(ses *session.Session, guildIDs []discord.GuildID) {
	cmds := cm.buildCommandData()
	if len(cmds) == 0 {
		cm.logger.Info("No commands to register.")
		return
	}

	if len(guildIDs) == 0 {
		registered, err := ses.BulkOverwriteCommands(cm.applicationID, cmds)
		if err != nil {
			cm.logger.Error("Failed to bulk overwrite global commands",
				zap.Error(err),
				zap.Stringer("applicationID", cm.applicationID),
			)
			return
		}
		cm.logger.Info("Successfully registered global slash commands",
			zap.Int("count", len(registered)),
			zap.Stringer("applicationID", cm.applicationID),
		)
		return
	}

	for _, guildID := range guildIDs {
		registered, err := ses.BulkOverwriteGuildCommands(cm.applicationID, guildID, cmds)
		if err != nil {
			cm.logger.Error("Failed to bulk overwrite commands for guild",
				zap.Error(err),
				zap.Stringer("applicationID", cm.applicationID),
				zap.Stringer("guildID", guildID),
			)
			continue // Continue to the next guild
		}
		cm.logger.Info("Successfully registered slash commands for guild",
			zap.Int("count", len(registered)),
			zap.Stringer("applicationID", cm.applicationID),
			zap.Stringer("guildID", guildID),
		)
	}
}

// UnregisterAllCommands removes every registered command, guild-scoped when
// guild IDs are given and globally otherwise.
func (cm *CommandManager) UnregisterAllCommands(ses *session.Session, guildIDs []discord.GuildID) {
	cm.logger.Info("Unregistering all slash commands...", zap.Stringer("applicationID", cm.applicationID))

	if len(guildIDs) == 0 {
		if _, err := ses.BulkOverwriteCommands(cm.applicationID, []api.CreateCommandData{}); err != nil {
			cm.logger.Error("Failed to unregister global commands",
				zap.Error(err),
				zap.Stringer("applicationID", cm.applicationID),
			)
		}
		return
	}

	for _, guildID := range guildIDs {
		_, err := ses.BulkOverwriteGuildCommands(cm.applicationID, guildID, []api.CreateCommandData{})
		if err != nil {
			cm.logger.Error("Failed to unregister commands for guild",
				zap.Error(err),
				zap.Stringer("applicationID", cm.applicationID),
				zap.Stringer("guildID", guildID),
			)
			continue // Continue to the next guild
		}
		cm.logger.Info("Successfully requested to unregister all slash commands for guild",
			zap.Stringer("applicationID", cm.applicationID),
			zap.Stringer("guildID", guildID),
		)
	}
}

func (cm *CommandManager) buildCommandData() []api.CreateCommandData {
	cmds := make([]api.CreateCommandData, 0, len(cm.commands))
	for _, cmd := range cm.commands {
		data := api.CreateCommandData{
			Name:        cmd.Name(),
			Description: cmd.Description(),
			Options:     cmd.Options(),
		}
		if permissioned, ok := cmd.(PermissionedCommand); ok {
			perms := permissioned.DefaultMemberPermissions()
			data.DefaultMemberPermissions = &perms
		}
		cm.logger.Debug("Preparing to register command", zap.String("commandName", cmd.Name()))
		cmds = append(cmds, data)
	}
	return cmds
}
