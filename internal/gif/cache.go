package gif

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// SearchCache holds the LRU cache of search results, keyed by query.
type SearchCache struct {
	*lru.Cache[string, []string]
}

// NewSearchCache creates a new SearchCache with the given size.
// The size parameter determines the maximum number of queries the cache can hold.
func NewSearchCache(size int) (*SearchCache, error) {
	lruCache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}

	return &SearchCache{
		Cache: lruCache,
	}, nil
}

// Add stores the result set for a query.
func (sc *SearchCache) Add(query string, urls []string) {
	sc.Cache.Add(query, urls)
}

// Get looks up the result set for a query.
func (sc *SearchCache) Get(query string) ([]string, bool) {
	return sc.Cache.Get(query)
}

// Purge is used to completely clear the cache.
func (sc *SearchCache) Purge() {
	sc.Cache.Purge()
}

// Len returns the number of cached queries.
func (sc *SearchCache) Len() int {
	return sc.Cache.Len()
}

// cachedProvider memoizes the result sets of another Provider. Only the
// result set is memoized; choosing a GIF out of it stays with the caller.
type cachedProvider struct {
	inner  Provider
	cache  *SearchCache
	logger *zap.Logger
}

// NewCachedProvider wraps a Provider with a SearchCache.
func NewCachedProvider(inner Provider, cache *SearchCache, logger *zap.Logger) Provider {
	return &cachedProvider{
		inner:  inner,
		cache:  cache,
		logger: logger.Named("cached_gif_provider"),
	}
}

// Search returns the memoized result set for the query when one exists, and
// queries the inner provider otherwise. Empty result sets are not memoized so
// a transient no-result response does not stick.
func (p *cachedProvider) Search(ctx context.Context, query string) ([]string, error) {
	if urls, ok := p.cache.Get(query); ok {
		p.logger.Debug("GIF search cache hit", zap.String("query", query), zap.Int("count", len(urls)))

		return urls, nil
	}

	urls, err := p.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(urls) > 0 {
		p.cache.Add(query, urls)
	}

	return urls, nil
}
