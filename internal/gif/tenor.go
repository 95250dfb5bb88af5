package gif

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	tenorSearchURL = "https://tenor.googleapis.com/v2/search"

	// DefaultResultLimit is the number of results requested from Tenor when
	// the configuration does not override it.
	DefaultResultLimit = 20

	tenorRequestTimeout = 10 * time.Second
)

// tenorSearchResponse mirrors the slice of the Tenor v2 search payload we
// care about: one direct GIF URL per result.
type tenorSearchResponse struct {
	Results []struct {
		MediaFormats map[string]struct {
			URL string `json:"url"`
		} `json:"media_formats"`
	} `json:"results"`
}

// tenorProvider queries the Tenor v2 search API.
type tenorProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limit      int
	logger     *zap.Logger
}

// NewTenorProvider creates a Provider backed by the Tenor v2 search API.
func NewTenorProvider(apiKey string, limit int, logger *zap.Logger) Provider {
	if limit <= 0 {
		limit = DefaultResultLimit
	}

	return &tenorProvider{
		httpClient: &http.Client{Timeout: tenorRequestTimeout},
		baseURL:    tenorSearchURL,
		apiKey:     apiKey,
		limit:      limit,
		logger:     logger.Named("tenor_provider"),
	}
}

// Search queries Tenor and returns the direct GIF URL of every result that
// carries one.
func (p *tenorProvider) Search(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", p.apiKey)
	params.Set("limit", strconv.Itoa(p.limit))
	params.Set("media_filter", "gif")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tenor search request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tenor search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tenor search returned status %d", resp.StatusCode)
	}

	var payload tenorSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode tenor search response: %w", err)
	}

	urls := make([]string, 0, len(payload.Results))
	for _, result := range payload.Results {
		if format, ok := result.MediaFormats["gif"]; ok && format.URL != "" {
			urls = append(urls, format.URL)
		}
	}

	p.logger.Debug("Tenor search completed",
		zap.String("query", query),
		zap.Int("results", len(payload.Results)),
		zap.Int("gifURLs", len(urls)),
	)

	return urls, nil
}
