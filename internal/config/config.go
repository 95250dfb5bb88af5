package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized by ApplyEnvOverrides. Secrets are only ever
// read from the environment, never from the config file.
const (
	EnvDiscordToken    = "DISCORD_TOKEN"
	EnvDiscordAppID    = "DISCORD_APP_ID"
	EnvDiscordGuildIDs = "DISCORD_GUILD_IDS"
	EnvTenorAPIKey     = "TENOR_API_KEY"
)

// DiscordConfig stores Discord specific configurations.
type DiscordConfig struct {
	// BotToken is sourced from DISCORD_TOKEN exclusively.
	BotToken      string             `yaml:"-"`
	ApplicationID *discord.Snowflake `yaml:"application_id"`
	GuildIDs      []string           `yaml:"guild_ids"`
}

// GifConfig stores GIF search specific configurations.
type GifConfig struct {
	// TenorAPIKey is sourced from TENOR_API_KEY exclusively. When empty, the
	// built-in GIF set is used instead of the Tenor API.
	TenorAPIKey     string `yaml:"-"`
	SearchQuery     string `yaml:"search_query"`
	ResultLimit     int    `yaml:"result_limit"`
	SearchCacheSize int    `yaml:"search_cache_size"`
}

// Config stores the application configuration.
type Config struct {
	Discord  DiscordConfig `yaml:"discord"`
	Gif      GifConfig     `yaml:"gif"`
	LogLevel string        `yaml:"log_level"`
}

// LoadConfig loads the configuration from the given file path and overlays
// environment variables on top. A missing file is not an error; the bot can
// run from the environment alone. A missing DISCORD_TOKEN is always an error.
func LoadConfig(filePath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(filePath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", filePath, err)
		}
	case os.IsNotExist(err):
		// Environment-only operation.
	default:
		return nil, fmt.Errorf("failed to read config file %q: %w", filePath, err)
	}

	if err := ApplyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	if cfg.Discord.BotToken == "" {
		return nil, errors.New("DISCORD_TOKEN environment variable is not set")
	}

	return &cfg, nil
}

// ApplyEnvOverrides overlays recognized environment variables onto cfg.
// Values from the environment take precedence over the config file.
func ApplyEnvOverrides(cfg *Config) error {
	if token := os.Getenv(EnvDiscordToken); token != "" {
		cfg.Discord.BotToken = token
	}

	if appID := os.Getenv(EnvDiscordAppID); appID != "" {
		snowflake, err := discord.ParseSnowflake(appID)
		if err != nil {
			return fmt.Errorf("failed to parse %s %q: %w", EnvDiscordAppID, appID, err)
		}
		cfg.Discord.ApplicationID = &snowflake
	}

	if guildIDs := os.Getenv(EnvDiscordGuildIDs); guildIDs != "" {
		ids := make([]string, 0)
		for _, id := range strings.Split(guildIDs, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		cfg.Discord.GuildIDs = ids
	}

	if apiKey := os.Getenv(EnvTenorAPIKey); apiKey != "" {
		cfg.Gif.TenorAPIKey = apiKey
	}

	return nil
}
