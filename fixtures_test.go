package alloydoc_test

import (
	"testing"

	"github.com/fwojciec/alloydoc"
	"github.com/stretchr/testify/require"
)

func testEntries() []*alloydoc.Entry {
	return []*alloydoc.Entry{
		{
			ID:      "alloy://type/BlockId",
			Name:    "BlockId",
			Aliases: []string{"block id", "BlockIdentifier"},
			Tags:    []string{"eips", "blocks"},
			Summary: "Identifies a block by hash or by number/tag.",
			BodyRef: "alloy://eips/block-identifiers#blockid",
		},
		{
			ID:      "alloy://type/BlockNumberOrTag",
			Name:    "BlockNumberOrTag",
			Aliases: []string{"block number", "block tag"},
			Tags:    []string{"eips", "blocks"},
			Summary: "A block number or a named tag such as latest.",
			BodyRef: "alloy://eips/block-identifiers#blocknumberortag",
		},
		{
			ID:      "alloy://type/TxEnvelope",
			Name:    "TxEnvelope",
			Aliases: []string{"transaction envelope"},
			Tags:    []string{"consensus", "transactions"},
			Summary: "Signed transaction of any supported type.",
			BodyRef: "alloy://consensus/transactions#txenvelope",
		},
		{
			ID:      "alloy://type/RecommendedFillers",
			Name:    "RecommendedFillers",
			Aliases: []string{"BlobGasFiller"},
			Tags:    []string{"gas"},
			Summary: "Default filler stack for providers.",
			BodyRef: "alloy://provider/fillers#recommendedfillers",
		},
	}
}

func testCatalog(t *testing.T) *alloydoc.Catalog {
	t.Helper()
	c, err := alloydoc.NewCatalog(testEntries())
	require.NoError(t, err)
	return c
}
