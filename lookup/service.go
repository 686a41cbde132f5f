// Package lookup implements alloydoc.LookupService over an in-memory catalog.
package lookup

import (
	"context"

	"github.com/fwojciec/alloydoc"
)

// Ensure Service implements alloydoc.LookupService at compile time.
var _ alloydoc.LookupService = (*Service)(nil)

// Service answers type lookups against a catalog that is never mutated after
// construction, so it is safe for concurrent use.
type Service struct {
	catalog *alloydoc.Catalog
	ranker  *alloydoc.Ranker
}

// NewService returns a Service over catalog scored with cfg.
func NewService(catalog *alloydoc.Catalog, cfg alloydoc.MatchConfig) (*Service, error) {
	if catalog == nil {
		return nil, alloydoc.Errorf(alloydoc.EINVALID, "catalog required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		catalog: catalog,
		ranker:  alloydoc.NewRanker(catalog, alloydoc.NewMatcher(cfg)),
	}, nil
}

// LookupType validates req and returns the ranked matches.
func (s *Service) LookupType(ctx context.Context, req alloydoc.LookupRequest) ([]alloydoc.MatchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.ranker.Rank(req.Query, req.EffectiveLimit())
}

// Resolve returns the entry with the given id.
func (s *Service) Resolve(ctx context.Context, id string) (*alloydoc.Entry, error) {
	return s.catalog.Get(id)
}
