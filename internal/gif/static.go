package gif

import (
	"context"

	"go.uber.org/zap"
)

// curatedGifURLs is the built-in result set served when no Tenor API key is
// configured. Direct media URLs, so Discord renders them without an unfurl
// round trip.
var curatedGifURLs = []string{
	"https://media1.tenor.com/m/j2q3H61aU0cAAAAC/subway-surfers.gif",
	"https://media1.tenor.com/m/qiOmXhm9FnQAAAAC/brian-family-guy-tiktok-funny-clip-tasty-sand.gif",
	"https://media1.tenor.com/m/r_n5-n2cf2IAAAAC/subway-surfer.gif",
	"https://media0.giphy.com/media/dkUtjuBEdICST5zG7p/giphy.gif",
	"https://media1.giphy.com/media/Fr5LA2RCQbnVp74CxH/giphy.gif",
	"https://media2.giphy.com/media/UTemva5AkBntdGyAPM/giphy.gif",
	"https://media3.giphy.com/media/wc4gc2LmKZOU7bxFcQ/giphy.gif",
	"https://media1.tenor.com/m/G0yFMh7PL6QAAAAC/speech-bubble-cs-go-surf-surfing.gif",
	"https://media4.giphy.com/media/fYShjUkJAXW1YO6cNA/giphy.gif",
}

// staticProvider serves the curated built-in GIF set regardless of query.
type staticProvider struct {
	logger *zap.Logger
}

// NewStaticProvider creates a Provider backed by the curated built-in GIF set.
func NewStaticProvider(logger *zap.Logger) Provider {
	return &staticProvider{
		logger: logger.Named("static_gif_provider"),
	}
}

// Search returns a copy of the curated set. The query is ignored.
func (p *staticProvider) Search(ctx context.Context, query string) ([]string, error) {
	p.logger.Debug("Serving curated GIF set", zap.String("query", query), zap.Int("count", len(curatedGifURLs)))

	urls := make([]string, len(curatedGifURLs))
	copy(urls, curatedGifURLs)

	return urls, nil
}
