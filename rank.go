package alloydoc

import (
	"slices"
	"strings"
)

// Result limits for lookups.
const (
	DefaultLimit = 5
	MaxLimit     = 50
)

// MatchResult is one ranked lookup match.
type MatchResult struct {
	EntryID      string  `json:"id"`
	Name         string  `json:"name"`
	Score        float64 `json:"score"`
	MatchedField Field   `json:"matched_field"`
	Summary      string  `json:"summary"`
	BodyRef      string  `json:"body_ref"`
}

// Ranker scores every catalog entry against a query and orders the matches.
type Ranker struct {
	catalog *Catalog
	matcher *Matcher
}

// NewRanker returns a Ranker over catalog using matcher.
func NewRanker(catalog *Catalog, matcher *Matcher) *Ranker {
	return &Ranker{catalog: catalog, matcher: matcher}
}

// Rank returns up to limit entries matching query, best first. Ties keep
// catalog order. Limits above MaxLimit are clamped.
// Returns EINVALID for a blank query or a limit below 1.
// An empty result means nothing matched.
func (r *Ranker) Rank(query string, limit int) ([]MatchResult, error) {
	q := Normalize(query)
	if q == "" {
		return nil, Errorf(EINVALID, "query required")
	}
	if limit < 1 {
		return nil, Errorf(EINVALID, "limit must be a positive integer, got %d", limit)
	}
	limit = min(limit, MaxLimit)

	tokens := strings.Fields(q)
	results := make([]MatchResult, 0)
	for _, e := range r.catalog.entries {
		score, field := r.matcher.score(q, tokens, e)
		if score == 0 {
			continue
		}
		results = append(results, MatchResult{
			EntryID:      e.ID,
			Name:         e.Name,
			Score:        score,
			MatchedField: field,
			Summary:      e.Summary,
			BodyRef:      e.BodyRef,
		})
	}

	slices.SortStableFunc(results, func(a, b MatchResult) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
