package alloydoc

import (
	"context"
	"time"
)

// Document represents a full documentation resource addressed by URI.
type Document struct {
	ID          string    `json:"id"`
	URI         string    `json:"uri"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MimeType    string    `json:"mime_type"`
	Content     string    `json:"content"`
	ContentHash string    `json:"content_hash"`
	Position    int       `json:"position"`
	LoadedAt    time.Time `json:"loaded_at"`
}

// DefaultMimeType is used for documents that do not declare one.
const DefaultMimeType = "text/markdown"

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URI == "" {
		return Errorf(EINVALID, "document URI required")
	}
	if d.Name == "" {
		return Errorf(EINVALID, "document %q: name required", d.URI)
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document %q: content required", d.URI)
	}
	return nil
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// SaveDocument inserts a document or updates the stored copy with the
	// same URI. Unchanged documents are left untouched.
	SaveDocument(ctx context.Context, doc *Document) error

	// FindDocumentByURI retrieves a document by URI.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByURI(ctx context.Context, uri string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, ordered by
	// position.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, uri string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	URI *string `json:"uri"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
