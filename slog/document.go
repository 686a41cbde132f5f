package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/alloydoc"
)

// Ensure LoggingDocumentService implements alloydoc.DocumentService.
var _ alloydoc.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with debug logging of writes.
// Reads are delegated without logging.
type LoggingDocumentService struct {
	next   alloydoc.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next alloydoc.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// SaveDocument delegates to the wrapped service and logs the write.
func (s *LoggingDocumentService) SaveDocument(ctx context.Context, doc *alloydoc.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save document",
			"uri", doc.URI,
			"hash", doc.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveDocument(ctx, doc)
}

// FindDocumentByURI delegates to the wrapped service.
func (s *LoggingDocumentService) FindDocumentByURI(ctx context.Context, uri string) (*alloydoc.Document, error) {
	return s.next.FindDocumentByURI(ctx, uri)
}

// FindDocuments delegates to the wrapped service.
func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter alloydoc.DocumentFilter) ([]*alloydoc.Document, error) {
	return s.next.FindDocuments(ctx, filter)
}

// DeleteDocument delegates to the wrapped service and logs the removal.
func (s *LoggingDocumentService) DeleteDocument(ctx context.Context, uri string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("retire document",
			"uri", uri,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteDocument(ctx, uri)
}
