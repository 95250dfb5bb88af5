package commands

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildCommandData(t *testing.T) {
	params := CommandManagerParams{
		ApplicationID: discord.AppID(12345),
		Logger:        zap.NewNop(),
		Commands:      []Command{NewPingCommand(), NewSetupCommand(zap.NewNop(), nil)},
	}
	cm := NewCommandManager(params)

	data := cm.buildCommandData()
	require.Len(t, data, 2)

	byName := make(map[string]api.CreateCommandData, len(data))
	for _, d := range data {
		byName[d.Name] = d
	}

	ping, ok := byName["ping"]
	require.True(t, ok)
	assert.NotEmpty(t, ping.Description)
	assert.Nil(t, ping.DefaultMemberPermissions, "plain commands carry no permission restriction")

	setup, ok := byName["setup"]
	require.True(t, ok)
	require.NotNil(t, setup.DefaultMemberPermissions)
	assert.Equal(t, discord.PermissionManageMessages, *setup.DefaultMemberPermissions)
}
