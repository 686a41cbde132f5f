package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/fwojciec/alloydoc"
	main "github.com/fwojciec/alloydoc/cmd/alloydoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against the embedded corpus and a fresh database.
func run(t *testing.T, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "alloydoc.db")

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	err = m.Run(context.Background(), args, nil, stdout, stderr)
	return stdout, stderr, err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("looks up a type end to end", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "lookup", "BlockId")

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Results for 'BlockId'")
		assert.Contains(t, stdout.String(), "**BlockId** (name match, score 1.00)")
	})

	t.Run("prints json results", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "lookup", "block", "--json", "-n", "2")
		require.NoError(t, err)

		var results []struct {
			ID           string  `json:"id"`
			Score        float64 `json:"score"`
			MatchedField string  `json:"matched_field"`
			Summary      string  `json:"summary"`
			BodyRef      string  `json:"body_ref"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
		require.Len(t, results, 2)
		assert.Equal(t, "alloy://type/BlockId", results[0].ID)
		assert.Equal(t, "name", results[0].MatchedField)
		assert.Equal(t, "alloy://eips/block-identifiers#blockid", results[0].BodyRef)
		assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
	})

	t.Run("prints empty json array when nothing matches", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "lookup", "xyznotreal", "--json")

		require.NoError(t, err)
		assert.JSONEq(t, "[]", stdout.String())
	})

	t.Run("rejects zero limit", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, "lookup", "BlockId", "-n", "0")

		assert.Equal(t, alloydoc.EINVALID, alloydoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "limit must be a positive integer")
	})

	t.Run("resolves entry with section", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "resolve", "BlockNumberOrTag", "--full")

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# BlockNumberOrTag")
		assert.Contains(t, stdout.String(), "BlockNumberOrTag::Finalized")
	})

	t.Run("reports unknown entry", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, "resolve", "alloy://type/Retired")

		assert.Equal(t, alloydoc.ENOTFOUND, alloydoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})

	t.Run("searches sections", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "search", "NonceFiller", "-n", "1")

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "**NonceFiller** (Provider Fillers)")
	})

	t.Run("lists documents", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "docs")

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Available Resources")
		assert.Contains(t, stdout.String(), "alloy://encoding/blobs")
	})

	t.Run("fails on duplicate entry ids", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "alloydoc.db")
		m.CorpusFS = fstest.MapFS{
			"catalog.yaml": {Data: []byte(`
resources:
  - uri: alloy://x/doc
    name: Doc
    path: doc.md
entries:
  - id: alloy://type/A
    name: A
    body_ref: alloy://x/doc
  - id: alloy://type/A
    name: A
    body_ref: alloy://x/doc
`)},
			"doc.md": {Data: []byte("# Doc\n")},
		}

		err := m.Run(context.Background(), []string{"docs"}, nil, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Equal(t, alloydoc.ECONFLICT, alloydoc.ErrorCode(err))
		assert.Contains(t, err.Error(), "invalid catalog")
	})

	t.Run("fails on missing corpus directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "--corpus", filepath.Join(t.TempDir(), "missing"), "docs")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load corpus")
	})
}
