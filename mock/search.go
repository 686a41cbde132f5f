package mock

import (
	"context"

	"github.com/fwojciec/alloydoc"
)

var _ alloydoc.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of alloydoc.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, opts alloydoc.SearchOptions) ([]alloydoc.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query string, opts alloydoc.SearchOptions) ([]alloydoc.SearchResult, error) {
	return s.SearchFn(ctx, query, opts)
}
