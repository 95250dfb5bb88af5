package gif_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mangodia/mangodia-bot/internal/gif"
)

func TestStaticProvider_Search(t *testing.T) {
	provider := gif.NewStaticProvider(zap.NewNop())

	urls, err := provider.Search(context.Background(), gif.DefaultSearchQuery)
	require.NoError(t, err)
	require.NotEmpty(t, urls)

	for _, u := range urls {
		assert.True(t, strings.HasPrefix(u, "https://"), "expected direct https URL, got %q", u)
		assert.True(t, strings.HasSuffix(u, ".gif"), "expected direct gif URL, got %q", u)
	}
}

func TestStaticProvider_Search_ReturnsCopy(t *testing.T) {
	provider := gif.NewStaticProvider(zap.NewNop())

	first, err := provider.Search(context.Background(), gif.DefaultSearchQuery)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	first[0] = "https://example.com/mutated.gif"

	second, err := provider.Search(context.Background(), gif.DefaultSearchQuery)
	require.NoError(t, err)
	assert.NotEqual(t, first[0], second[0])
}
