package gif

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTenorProvider(srv *httptest.Server) *tenorProvider {
	return &tenorProvider{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
		apiKey:     "test-key",
		limit:      5,
		logger:     zap.NewNop(),
	}
}

func TestTenorProvider_Search_ParsesResults(t *testing.T) {
	var gotQuery string
	var gotKey string
	var gotLimit string
	var gotFilter string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("key")
		gotLimit = r.URL.Query().Get("limit")
		gotFilter = r.URL.Query().Get("media_filter")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{"media_formats": {"gif": {"url": "https://media.tenor.com/one.gif"}}},
				{"media_formats": {"tinygif": {"url": "https://media.tenor.com/tiny.gif"}}},
				{"media_formats": {"gif": {"url": "https://media.tenor.com/two.gif"}}}
			]
		}`))
	}))
	defer srv.Close()

	provider := newTestTenorProvider(srv)

	urls, err := provider.Search(context.Background(), "subway surfers")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://media.tenor.com/one.gif",
		"https://media.tenor.com/two.gif",
	}, urls)
	assert.Equal(t, "subway surfers", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "5", gotLimit)
	assert.Equal(t, "gif", gotFilter)
}

func TestTenorProvider_Search_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	provider := newTestTenorProvider(srv)

	urls, err := provider.Search(context.Background(), "subway surfers")
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestTenorProvider_Search_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	provider := newTestTenorProvider(srv)

	_, err := provider.Search(context.Background(), "subway surfers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestTenorProvider_Search_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	}))
	defer srv.Close()

	provider := newTestTenorProvider(srv)

	_, err := provider.Search(context.Background(), "subway surfers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestTenorProvider_Search_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	provider := newTestTenorProvider(srv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Search(ctx, "subway surfers")
	require.Error(t, err)
}

func TestNewTenorProvider_DefaultsLimit(t *testing.T) {
	provider := NewTenorProvider("test-key", 0, zap.NewNop())

	tp, ok := provider.(*tenorProvider)
	require.True(t, ok)
	assert.Equal(t, DefaultResultLimit, tp.limit)
}
