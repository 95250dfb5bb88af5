// Package gif provides GIF search infrastructure used to decorate embeds.
package gif

import "context"

// DefaultSearchQuery is the search query used for FAQ embed decoration when
// the configuration does not override it.
const DefaultSearchQuery = "subway surfers"

// Provider looks up candidate GIFs for a search query.
type Provider interface {
	// Search returns direct GIF URLs for the given query. An empty slice with
	// a nil error is a valid result; callers are expected to degrade to an
	// imageless embed.
	Search(ctx context.Context, query string) ([]string, error)
}
