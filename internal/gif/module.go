// Package gif provides GIF search infrastructure and Fx modules.
package gif

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mangodia/mangodia-bot/internal/config"
)

// Module provides GIF search dependencies.
var Module = fx.Module("gif",
	fx.Provide(
		NewSearchCacheProvider,
		NewProvider,
	),
)

// NewSearchCacheProvider creates a SearchCache with config-derived size.
func NewSearchCacheProvider(cfg *config.Config, logger *zap.Logger) (*SearchCache, error) {
	size := cfg.Gif.SearchCacheSize
	if size <= 0 {
		logger.Warn("Gif SearchCacheSize is not configured or is invalid, defaulting to 32",
			zap.Int("configuredSize", size))
		size = 32
	}

	return NewSearchCache(size)
}

// NewProvider selects the Provider implementation from configuration: Tenor
// behind the search cache when an API key is present, the curated built-in
// set otherwise.
func NewProvider(cfg *config.Config, cache *SearchCache, logger *zap.Logger) Provider {
	if cfg.Gif.TenorAPIKey == "" {
		logger.Info("Tenor API key is not set, using the built-in GIF set")

		return NewStaticProvider(logger)
	}

	logger.Info("Using Tenor GIF search", zap.Int("resultLimit", cfg.Gif.ResultLimit))

	return NewCachedProvider(NewTenorProvider(cfg.Gif.TenorAPIKey, cfg.Gif.ResultLimit, logger), cache, logger)
}
