package yaml_test

import (
	"testing"
	"testing/fstest"

	"github.com/fwojciec/alloydoc"
	"github.com/fwojciec/alloydoc/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifest = `
resources:
  - uri: alloy://eips/block-identifiers
    name: Block Identifier Types
    description: Guide to BlockId and friends.
    path: docs/block-identifiers.md
  - uri: alloy://provider/setup
    name: Provider Setup
    description: Guide to providers.
    mime_type: text/plain
    path: docs/setup.md
entries:
  - id: alloy://type/BlockId
    name: BlockId
    aliases: [block id]
    tags: [eips]
    summary: Identifies a block.
    body_ref: alloy://eips/block-identifiers#blockid
prompts:
  - name: setup_signing
    description: Signing guide.
    request: Help me sign.
    path: prompts/signing.md
`

func corpus(manifest string) fstest.MapFS {
	return fstest.MapFS{
		"corpus/catalog.yaml":              {Data: []byte(manifest)},
		"corpus/docs/block-identifiers.md": {Data: []byte("# Blocks\n\n## BlockId\n")},
		"corpus/docs/setup.md":             {Data: []byte("# Setup\n")},
		"corpus/prompts/signing.md":        {Data: []byte("Step 1.")},
	}
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	t.Run("loads documents, entries and prompts", func(t *testing.T) {
		t.Parallel()

		m, err := yaml.LoadManifest(corpus(validManifest), "corpus/catalog.yaml")

		require.NoError(t, err)
		require.Len(t, m.Documents, 2)
		assert.Equal(t, "alloy://eips/block-identifiers", m.Documents[0].URI)
		assert.Equal(t, "# Blocks\n\n## BlockId\n", m.Documents[0].Content)
		assert.Equal(t, alloydoc.DefaultMimeType, m.Documents[0].MimeType)
		assert.Equal(t, 0, m.Documents[0].Position)
		assert.Equal(t, "text/plain", m.Documents[1].MimeType)
		assert.Equal(t, 1, m.Documents[1].Position)

		require.Len(t, m.Entries, 1)
		assert.Equal(t, "BlockId", m.Entries[0].Name)
		assert.Equal(t, []string{"block id"}, m.Entries[0].Aliases)
		assert.Equal(t, []string{"eips"}, m.Entries[0].Tags)
		assert.Equal(t, "alloy://eips/block-identifiers#blockid", m.Entries[0].BodyRef)

		require.Len(t, m.Prompts, 1)
		assert.Equal(t, "setup_signing", m.Prompts[0].Name)
		assert.Equal(t, "Help me sign.", m.Prompts[0].Request)
		assert.Equal(t, "Step 1.", m.Prompts[0].Response)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadManifest(corpus("entries:\n  - id: x\n    nme: typo\n"), "corpus/catalog.yaml")

		require.Error(t, err)
		assert.Equal(t, alloydoc.EINVALID, alloydoc.ErrorCode(err))
	})

	t.Run("rejects missing resource body", func(t *testing.T) {
		t.Parallel()

		manifest := "resources:\n  - uri: alloy://x\n    name: X\n    path: docs/missing.md\n"

		_, err := yaml.LoadManifest(corpus(manifest), "corpus/catalog.yaml")

		require.Error(t, err)
		assert.Equal(t, alloydoc.EINVALID, alloydoc.ErrorCode(err))
	})

	t.Run("rejects duplicate resource URIs", func(t *testing.T) {
		t.Parallel()

		manifest := "resources:\n" +
			"  - {uri: alloy://x, name: X, path: docs/setup.md}\n" +
			"  - {uri: alloy://x, name: Y, path: docs/setup.md}\n"

		_, err := yaml.LoadManifest(corpus(manifest), "corpus/catalog.yaml")

		require.Error(t, err)
		assert.Equal(t, alloydoc.EINVALID, alloydoc.ErrorCode(err))
	})

	t.Run("rejects entry referencing unknown resource", func(t *testing.T) {
		t.Parallel()

		manifest := "resources:\n" +
			"  - {uri: alloy://x, name: X, path: docs/setup.md}\n" +
			"entries:\n" +
			"  - {id: alloy://type/Y, name: Y, body_ref: 'alloy://y#y'}\n"

		_, err := yaml.LoadManifest(corpus(manifest), "corpus/catalog.yaml")

		require.Error(t, err)
		assert.Equal(t, alloydoc.EINVALID, alloydoc.ErrorCode(err))
		assert.Contains(t, alloydoc.ErrorMessage(err), "unknown resource")
	})

	t.Run("returns error when manifest is missing", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadManifest(corpus(validManifest), "nope.yaml")

		require.Error(t, err)
	})
}
