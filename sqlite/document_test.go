package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/alloydoc"
	"github.com/fwojciec/alloydoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(uri string, position int) *alloydoc.Document {
	return &alloydoc.Document{
		URI:         uri,
		Name:        "Doc " + uri,
		Description: "About " + uri,
		Content:     "# " + uri + "\n\nBody.",
		Position:    position,
	}
}

func TestDocumentService_SaveDocument(t *testing.T) {
	t.Parallel()

	t.Run("inserts new document with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(setupTestDB(t))
		doc := newDoc("alloy://provider/setup", 0)

		err := svc.SaveDocument(context.Background(), doc)

		require.NoError(t, err)
		assert.NotEmpty(t, doc.ID)
		assert.Equal(t, sqlite.HashContent(doc.Content), doc.ContentHash)
		assert.Equal(t, alloydoc.DefaultMimeType, doc.MimeType)
		assert.False(t, doc.LoadedAt.IsZero())
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(setupTestDB(t))

		err := svc.SaveDocument(context.Background(), &alloydoc.Document{})

		require.Error(t, err)
		assert.Equal(t, alloydoc.EINVALID, alloydoc.ErrorCode(err))
	})

	t.Run("leaves unchanged document untouched", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(setupTestDB(t))
		ctx := context.Background()
		first := newDoc("alloy://provider/setup", 0)
		require.NoError(t, svc.SaveDocument(ctx, first))

		second := newDoc("alloy://provider/setup", 0)
		require.NoError(t, svc.SaveDocument(ctx, second))

		assert.Equal(t, first.ID, second.ID)
		assert.True(t, first.LoadedAt.Equal(second.LoadedAt))
	})

	t.Run("updates changed content in place", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(setupTestDB(t))
		ctx := context.Background()
		first := newDoc("alloy://provider/setup", 0)
		require.NoError(t, svc.SaveDocument(ctx, first))

		changed := newDoc("alloy://provider/setup", 3)
		changed.Content = "# Setup\n\nNew body."
		require.NoError(t, svc.SaveDocument(ctx, changed))

		found, err := svc.FindDocumentByURI(ctx, "alloy://provider/setup")
		require.NoError(t, err)
		assert.Equal(t, first.ID, found.ID)
		assert.Equal(t, "# Setup\n\nNew body.", found.Content)
		assert.Equal(t, sqlite.HashContent("# Setup\n\nNew body."), found.ContentHash)
		assert.Equal(t, 3, found.Position)
	})
}

func TestDocumentService_FindDocumentByURI(t *testing.T) {
	t.Parallel()

	t.Run("returns stored document", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(setupTestDB(t))
		ctx := context.Background()
		doc := newDoc("alloy://encoding/blobs", 0)
		require.NoError(t, svc.SaveDocument(ctx, doc))

		found, err := svc.FindDocumentByURI(ctx, "alloy://encoding/blobs")

		require.NoError(t, err)
		assert.Equal(t, doc.ID, found.ID)
		assert.Equal(t, doc.Name, found.Name)
		assert.Equal(t, doc.Description, found.Description)
		assert.Equal(t, doc.Content, found.Content)
		assert.True(t, doc.LoadedAt.Equal(found.LoadedAt))
	})

	t.Run("returns ENOTFOUND for unknown URI", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(setupTestDB(t))

		_, err := svc.FindDocumentByURI(context.Background(), "alloy://missing")

		require.Error(t, err)
		assert.Equal(t, alloydoc.ENOTFOUND, alloydoc.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.DocumentService {
		t.Helper()
		svc := sqlite.NewDocumentService(setupTestDB(t))
		for i, pos := range []int{2, 0, 1} {
			require.NoError(t, svc.SaveDocument(context.Background(), newDoc(fmt.Sprintf("alloy://doc/%d", i), pos)))
		}
		return svc
	}

	t.Run("orders by position", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		docs, err := svc.FindDocuments(context.Background(), alloydoc.DocumentFilter{})

		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "alloy://doc/1", docs[0].URI)
		assert.Equal(t, "alloy://doc/2", docs[1].URI)
		assert.Equal(t, "alloy://doc/0", docs[2].URI)
	})

	t.Run("filters by URI", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		uri := "alloy://doc/2"

		docs, err := svc.FindDocuments(context.Background(), alloydoc.DocumentFilter{URI: &uri})

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, uri, docs[0].URI)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		docs, err := svc.FindDocuments(context.Background(), alloydoc.DocumentFilter{Limit: 1, Offset: 1})

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "alloy://doc/2", docs[0].URI)
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		docs, err := svc.FindDocuments(context.Background(), alloydoc.DocumentFilter{Offset: 2})

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "alloy://doc/0", docs[0].URI)
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("removes document", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.SaveDocument(ctx, newDoc("alloy://x", 0)))

		require.NoError(t, svc.DeleteDocument(ctx, "alloy://x"))

		_, err := svc.FindDocumentByURI(ctx, "alloy://x")
		assert.Equal(t, alloydoc.ENOTFOUND, alloydoc.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown URI", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(setupTestDB(t))

		err := svc.DeleteDocument(context.Background(), "alloy://missing")

		assert.Equal(t, alloydoc.ENOTFOUND, alloydoc.ErrorCode(err))
	})
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	assert.Len(t, sqlite.HashContent("hello"), 16)
	assert.Equal(t, sqlite.HashContent("hello"), sqlite.HashContent("hello"))
	assert.NotEqual(t, sqlite.HashContent("hello"), sqlite.HashContent("world"))
}
