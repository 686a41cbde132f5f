package alloydoc

import "context"

// SearchService provides full-text search over document sections.
type SearchService interface {
	// Search returns sections ordered by relevance to the query.
	// Returns EINVALID for a blank query or a negative limit.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Maximum number of results to return. Zero means DefaultLimit.
	Limit int `json:"limit,omitempty"`
}

// SearchResult represents a search match.
type SearchResult struct {
	Section *Section `json:"section"`
	Score   int      `json:"score"`
}
