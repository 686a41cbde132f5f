package alloydoc

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// MatchConfig holds the score bands used by Matcher.
type MatchConfig struct {
	// SubstringFloor and SubstringCeiling bound containment scores. Both are
	// exclusive: coverage below 100% never reaches the exact-match score.
	SubstringFloor   float64
	SubstringCeiling float64

	// TokenFloor and TokenCeiling bound multi-token overlap scores (exclusive).
	TokenFloor   float64
	TokenCeiling float64

	// MinSimilarity is the edit-distance similarity a candidate must exceed
	// to score at all when no containment match exists. Only single-token
	// queries fall back to edit distance.
	MinSimilarity float64

	// TagWeight scales tag scores relative to name and alias scores.
	TagWeight float64
}

// DefaultMatchConfig returns the score bands tuned for the curated corpus.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		SubstringFloor:   0.6,
		SubstringCeiling: 1.0,
		TokenFloor:       0.3,
		TokenCeiling:     0.6,
		MinSimilarity:    0.5,
		TagWeight:        0.5,
	}
}

// Validate returns an error if the bands are out of order or outside [0,1].
func (c MatchConfig) Validate() error {
	if c.SubstringFloor < 0 || c.SubstringFloor >= c.SubstringCeiling || c.SubstringCeiling > 1 {
		return Errorf(EINVALID, "substring band must satisfy 0 <= floor < ceiling <= 1")
	}
	if c.TokenFloor < 0 || c.TokenFloor >= c.TokenCeiling || c.TokenCeiling > 1 {
		return Errorf(EINVALID, "token band must satisfy 0 <= floor < ceiling <= 1")
	}
	if c.MinSimilarity < 0 || c.MinSimilarity >= 1 {
		return Errorf(EINVALID, "minimum similarity must be in [0, 1)")
	}
	if c.TagWeight <= 0 || c.TagWeight > 1 {
		return Errorf(EINVALID, "tag weight must be in (0, 1]")
	}
	return nil
}

// Matcher scores a query against a single entry.
type Matcher struct {
	cfg MatchConfig
}

// NewMatcher returns a Matcher using the given score bands.
func NewMatcher(cfg MatchConfig) *Matcher {
	return &Matcher{cfg: cfg}
}

// Score returns the best score in [0,1] across the entry's name, aliases and
// tags, and the field that produced it. The query is normalized first.
// A score of 0 is reported with FieldNone.
func (m *Matcher) Score(query string, e *Entry) (float64, Field) {
	q := Normalize(query)
	if q == "" {
		return 0, FieldNone
	}
	return m.score(q, strings.Fields(q), e)
}

// score expects q to be normalized already.
func (m *Matcher) score(q string, tokens []string, e *Entry) (float64, Field) {
	best, field := m.scoreCandidate(q, tokens, e.Name), FieldName
	if best == 0 {
		field = FieldNone
	}
	if best == 1 {
		return best, field
	}

	for _, alias := range e.Aliases {
		if s := m.scoreCandidate(q, tokens, alias); s > best {
			best, field = s, FieldAlias
		}
	}
	for _, tag := range e.Tags {
		if s := m.scoreCandidate(q, tokens, tag) * m.cfg.TagWeight; s > best {
			best, field = s, FieldTag
		}
	}

	return best, field
}

// scoreCandidate scores a normalized query against one name, alias or tag.
func (m *Matcher) scoreCandidate(q string, tokens []string, candidate string) float64 {
	c := Normalize(candidate)
	if c == "" {
		return 0
	}
	if q == c {
		return 1
	}

	qLen, cLen := utf8.RuneCountInString(q), utf8.RuneCountInString(c)

	// Containment in either direction; coverage is the shorter string's
	// share of the longer one, which is strictly below 1 here.
	if strings.Contains(c, q) || strings.Contains(q, c) {
		coverage := float64(min(qLen, cLen)) / float64(max(qLen, cLen))
		return m.cfg.SubstringFloor + (m.cfg.SubstringCeiling-m.cfg.SubstringFloor)*coverage
	}

	if len(tokens) > 1 {
		var hits int
		for _, tok := range tokens {
			if strings.Contains(c, tok) {
				hits++
			}
		}
		// Multi-token queries never fall back to edit distance.
		if hits == 0 {
			return 0
		}
		// hits/(n+1) keeps the result strictly inside the band.
		frac := float64(hits) / float64(len(tokens)+1)
		return m.cfg.TokenFloor + (m.cfg.TokenCeiling-m.cfg.TokenFloor)*frac
	}

	sim := 1 - float64(levenshtein.ComputeDistance(q, c))/float64(max(qLen, cLen))
	if sim > m.cfg.MinSimilarity {
		return sim
	}
	return 0
}

// Normalize case-folds s, trims it and collapses internal whitespace to
// single spaces.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
