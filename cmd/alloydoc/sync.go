package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/alloydoc"
)

// SyncDocuments saves every corpus document and deletes stored documents
// the corpus no longer contains. It returns the number of retired documents.
func SyncDocuments(ctx context.Context, documents alloydoc.DocumentService, corpus []*alloydoc.Document) (int, error) {
	keep := make(map[string]struct{}, len(corpus))
	for _, doc := range corpus {
		if err := documents.SaveDocument(ctx, doc); err != nil {
			return 0, fmt.Errorf("failed to save %s: %w", doc.URI, err)
		}
		keep[doc.URI] = struct{}{}
	}

	stored, err := documents.FindDocuments(ctx, alloydoc.DocumentFilter{})
	if err != nil {
		return 0, err
	}

	var retired int
	for _, doc := range stored {
		if _, ok := keep[doc.URI]; ok {
			continue
		}
		if err := documents.DeleteDocument(ctx, doc.URI); err != nil {
			return retired, fmt.Errorf("failed to retire %s: %w", doc.URI, err)
		}
		retired++
	}
	return retired, nil
}
