// Package corpus embeds the curated alloy documentation: the catalog
// manifest, the markdown resources and the prompt bodies.
package corpus

import "embed"

// FS is rooted at the corpus directory; the manifest is catalog.yaml.
//
//go:embed catalog.yaml resources prompts
var FS embed.FS
