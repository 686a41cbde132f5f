package mock

import (
	"context"

	"github.com/fwojciec/alloydoc"
)

var _ alloydoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of alloydoc.DocumentService.
type DocumentService struct {
	SaveDocumentFn      func(ctx context.Context, doc *alloydoc.Document) error
	FindDocumentByURIFn func(ctx context.Context, uri string) (*alloydoc.Document, error)
	FindDocumentsFn     func(ctx context.Context, filter alloydoc.DocumentFilter) ([]*alloydoc.Document, error)
	DeleteDocumentFn    func(ctx context.Context, uri string) error
}

func (s *DocumentService) SaveDocument(ctx context.Context, doc *alloydoc.Document) error {
	return s.SaveDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByURI(ctx context.Context, uri string) (*alloydoc.Document, error) {
	return s.FindDocumentByURIFn(ctx, uri)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter alloydoc.DocumentFilter) ([]*alloydoc.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, uri string) error {
	return s.DeleteDocumentFn(ctx, uri)
}
