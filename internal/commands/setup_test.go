package commands_test

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mangodia/mangodia-bot/internal/commands"
)

func TestSetupCommand_Metadata(t *testing.T) {
	cmd := commands.NewSetupCommand(zap.NewNop(), nil)

	assert.Equal(t, "setup", cmd.Name())
	assert.NotEmpty(t, cmd.Description())
	assert.Nil(t, cmd.Options())
}

func TestSetupCommand_RequiresManageMessages(t *testing.T) {
	cmd := commands.NewSetupCommand(zap.NewNop(), nil)

	permissioned, ok := cmd.(commands.PermissionedCommand)
	require.True(t, ok, "setup must carry a default permission restriction")
	assert.Equal(t, discord.PermissionManageMessages, permissioned.DefaultMemberPermissions())
}
