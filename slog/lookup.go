// Package slog provides logging decorators for alloydoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/alloydoc"
)

// Ensure LoggingLookupService implements alloydoc.LookupService.
var _ alloydoc.LookupService = (*LoggingLookupService)(nil)

// LoggingLookupService wraps a LookupService with request logging.
type LoggingLookupService struct {
	next   alloydoc.LookupService
	logger *slog.Logger
}

// NewLoggingLookupService creates a new LoggingLookupService.
func NewLoggingLookupService(next alloydoc.LookupService, logger *slog.Logger) *LoggingLookupService {
	return &LoggingLookupService{next: next, logger: logger}
}

// LookupType delegates to the wrapped service and logs the lookup.
func (s *LoggingLookupService) LookupType(ctx context.Context, req alloydoc.LookupRequest) (results []alloydoc.MatchResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"query", req.Query,
			"count", len(results),
			"duration", time.Since(begin),
		}
		if len(results) > 0 {
			attrs = append(attrs, "top", results[0].EntryID)
		}
		if err != nil {
			attrs = append(attrs, "code", alloydoc.ErrorCode(err), "err", err)
		}
		s.logger.Info("type lookup", attrs...)
	}(time.Now())
	return s.next.LookupType(ctx, req)
}

// Resolve delegates to the wrapped service and logs the resolution.
func (s *LoggingLookupService) Resolve(ctx context.Context, id string) (entry *alloydoc.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("resolve entry",
			"id", id,
			"found", entry != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Resolve(ctx, id)
}
