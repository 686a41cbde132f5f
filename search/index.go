// Package search provides full-text search over document sections.
package search

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/fwojciec/alloydoc"
	"golang.org/x/sync/errgroup"
)

// Ensure Index implements alloydoc.SearchService and alloydoc.SectionService
// at compile time.
var (
	_ alloydoc.SearchService  = (*Index)(nil)
	_ alloydoc.SectionService = (*Index)(nil)
)

// Section scores.
const (
	scoreHeading     = 100
	scoreCodeMention = 80
	scoreMention     = 50
	maxMentionBonus  = 30
	scoreTermHeading = 10
	scoreTermContent = 5
)

// Index holds the sections of every document. It is immutable after Build
// and safe for concurrent use.
type Index struct {
	sections []indexedSection
	byURI    map[string][]alloydoc.Section
}

type indexedSection struct {
	section *alloydoc.Section
	heading string
	content string
}

// Build parses docs into sections concurrently. Sections keep document order
// and then in-document order.
func Build(ctx context.Context, parser alloydoc.SectionParser, docs []*alloydoc.Document) (*Index, error) {
	parsed := make([][]alloydoc.Section, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sections, err := parser.ParseSections(doc)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", doc.URI, err)
			}
			parsed[i] = sections
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	idx := &Index{byURI: make(map[string][]alloydoc.Section, len(docs))}
	for i, sections := range parsed {
		idx.byURI[docs[i].URI] = sections
		for j := range sections {
			s := &sections[j]
			idx.sections = append(idx.sections, indexedSection{
				section: s,
				heading: strings.ToLower(s.Heading),
				content: strings.ToLower(s.Content),
			})
		}
	}
	return idx, nil
}

// FindSections returns the sections of the document with the given URI.
// Returns ENOTFOUND if the document was not indexed.
func (idx *Index) FindSections(ctx context.Context, uri string) ([]alloydoc.Section, error) {
	sections, ok := idx.byURI[uri]
	if !ok {
		return nil, alloydoc.Errorf(alloydoc.ENOTFOUND, "document %q not indexed", uri)
	}
	return sections, nil
}

// Search returns sections ordered by score, ties in index order.
func (idx *Index) Search(ctx context.Context, query string, opts alloydoc.SearchOptions) ([]alloydoc.SearchResult, error) {
	q := alloydoc.Normalize(query)
	if q == "" {
		return nil, alloydoc.Errorf(alloydoc.EINVALID, "query required")
	}
	limit := opts.Limit
	if limit == 0 {
		limit = alloydoc.DefaultLimit
	}
	if limit < 0 {
		return nil, alloydoc.Errorf(alloydoc.EINVALID, "limit must be a positive integer, got %d", limit)
	}
	limit = min(limit, alloydoc.MaxLimit)

	terms := strings.Fields(q)
	results := make([]alloydoc.SearchResult, 0)
	for _, s := range idx.sections {
		score := scoreSection(s, q)
		for _, term := range terms {
			if strings.Contains(s.heading, term) {
				score += scoreTermHeading
			}
			if strings.Contains(s.content, term) {
				score += scoreTermContent
			}
		}
		if score > 0 {
			results = append(results, alloydoc.SearchResult{Section: s.section, Score: score})
		}
	}

	slices.SortStableFunc(results, func(a, b alloydoc.SearchResult) int {
		return b.Score - a.Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// scoreSection scores the whole normalized query against one section.
func scoreSection(s indexedSection, q string) int {
	if strings.Contains(s.heading, q) {
		return scoreHeading
	}
	if strings.Contains(s.content, "`"+q+"`") {
		return scoreCodeMention
	}
	if n := strings.Count(s.content, q); n > 0 {
		return scoreMention + min(n, maxMentionBonus)
	}
	return 0
}
