package gif

import (
	"context"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/mangodia/mangodia-bot/internal/config"
)

func TestModule(t *testing.T) {
	// Create a test configuration
	testConfig := &config.Config{}
	testConfig.Gif.SearchCacheSize = 4

	// Create a test logger
	logger := zap.NewNop()

	// Test that the module provides both the cache and the provider
	app := fxtest.New(t,
		fx.Supply(testConfig, logger),
		Module,
		fx.Invoke(func(cache *SearchCache, provider Provider) {
			if cache == nil {
				t.Error("Search cache should not be nil")
			}
			if provider == nil {
				t.Error("GIF provider should not be nil")
			}
		}),
	)

	app.RequireStart()
	app.RequireStop()
}

func TestNewProvider_WithoutAPIKey(t *testing.T) {
	logger := zap.NewNop()
	cfg := &config.Config{}

	cache, err := NewSearchCache(4)
	if err != nil {
		t.Fatalf("NewSearchCache returned error: %v", err)
	}

	provider := NewProvider(cfg, cache, logger)
	if _, ok := provider.(*staticProvider); !ok {
		t.Errorf("expected the built-in provider, got %T", provider)
	}

	urls, err := provider.Search(context.Background(), DefaultSearchQuery)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(urls) == 0 {
		t.Error("built-in GIF set should not be empty")
	}
}

func TestNewProvider_WithAPIKey(t *testing.T) {
	logger := zap.NewNop()
	cfg := &config.Config{}
	cfg.Gif.TenorAPIKey = "test-api-key"

	cache, err := NewSearchCache(4)
	if err != nil {
		t.Fatalf("NewSearchCache returned error: %v", err)
	}

	provider := NewProvider(cfg, cache, logger)
	if _, ok := provider.(*cachedProvider); !ok {
		t.Errorf("expected the cached Tenor provider, got %T", provider)
	}
}
