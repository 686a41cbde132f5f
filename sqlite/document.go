package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/alloydoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ alloydoc.DocumentService = (*DocumentService)(nil)

// DocumentService implements alloydoc.DocumentService using SQLite.
type DocumentService struct {
	db  *DB
	now func() time.Time
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db, now: time.Now}
}

// HashContent computes the xxHash of content as a hex string.
func HashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

const documentColumns = "id, uri, name, description, mime_type, content, content_hash, position, loaded_at"

// SaveDocument inserts doc or updates the stored row with the same URI.
// Rows whose content hash and metadata are unchanged are not rewritten.
// doc.ID, doc.ContentHash and doc.LoadedAt are set from the stored row.
func (s *DocumentService) SaveDocument(ctx context.Context, doc *alloydoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if doc.MimeType == "" {
		doc.MimeType = alloydoc.DefaultMimeType
	}
	doc.ContentHash = HashContent(doc.Content)

	existing, err := s.FindDocumentByURI(ctx, doc.URI)
	switch {
	case alloydoc.ErrorCode(err) == alloydoc.ENOTFOUND:
		return s.insert(ctx, doc)
	case err != nil:
		return err
	}

	doc.ID = existing.ID
	if existing.ContentHash == doc.ContentHash &&
		existing.Name == doc.Name &&
		existing.Description == doc.Description &&
		existing.MimeType == doc.MimeType &&
		existing.Position == doc.Position {
		doc.LoadedAt = existing.LoadedAt
		return nil
	}

	doc.LoadedAt = s.now().UTC()
	_, err = s.db.ExecContext(ctx, `
		UPDATE documents
		SET name = ?, description = ?, mime_type = ?, content = ?, content_hash = ?, position = ?, loaded_at = ?
		WHERE id = ?
	`, doc.Name, doc.Description, doc.MimeType, doc.Content, doc.ContentHash, doc.Position,
		doc.LoadedAt.Format(time.RFC3339Nano), doc.ID)
	return err
}

func (s *DocumentService) insert(ctx context.Context, doc *alloydoc.Document) error {
	doc.ID = uuid.New().String()
	doc.LoadedAt = s.now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.URI, doc.Name, doc.Description, doc.MimeType, doc.Content, doc.ContentHash,
		doc.Position, doc.LoadedAt.Format(time.RFC3339Nano))
	return err
}

// FindDocumentByURI retrieves a document by URI.
func (s *DocumentService) FindDocumentByURI(ctx context.Context, uri string) (*alloydoc.Document, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+documentColumns+` FROM documents WHERE uri = ?`, uri)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, alloydoc.Errorf(alloydoc.ENOTFOUND, "document %q not found", uri)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter ordered by position.
func (s *DocumentService) FindDocuments(ctx context.Context, filter alloydoc.DocumentFilter) ([]*alloydoc.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")
	if filter.URI != nil {
		query.WriteString(" AND uri = ?")
		args = append(args, *filter.URI)
	}
	query.WriteString(" ORDER BY position ASC, uri ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*alloydoc.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, uri string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE uri = ?", uri)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return alloydoc.Errorf(alloydoc.ENOTFOUND, "document %q not found", uri)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*alloydoc.Document, error) {
	var doc alloydoc.Document
	var loadedAt string

	if err := row.Scan(&doc.ID, &doc.URI, &doc.Name, &doc.Description, &doc.MimeType,
		&doc.Content, &doc.ContentHash, &doc.Position, &loadedAt); err != nil {
		return nil, err
	}

	t, err := parseRFC3339(loadedAt, "loaded_at")
	if err != nil {
		return nil, err
	}
	doc.LoadedAt = t
	return &doc, nil
}
