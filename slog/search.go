package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/alloydoc"
)

// Ensure LoggingSearchService implements alloydoc.SearchService.
var _ alloydoc.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with request logging.
type LoggingSearchService struct {
	next   alloydoc.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next alloydoc.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the search.
func (s *LoggingSearchService) Search(ctx context.Context, query string, opts alloydoc.SearchOptions) (results []alloydoc.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("section search",
			"query", query,
			"limit", opts.Limit,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, opts)
}
