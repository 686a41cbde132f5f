package mock

import (
	"context"

	"github.com/fwojciec/alloydoc"
)

var _ alloydoc.LookupService = (*LookupService)(nil)

// LookupService is a mock implementation of alloydoc.LookupService.
type LookupService struct {
	LookupTypeFn func(ctx context.Context, req alloydoc.LookupRequest) ([]alloydoc.MatchResult, error)
	ResolveFn    func(ctx context.Context, id string) (*alloydoc.Entry, error)
}

func (s *LookupService) LookupType(ctx context.Context, req alloydoc.LookupRequest) ([]alloydoc.MatchResult, error) {
	return s.LookupTypeFn(ctx, req)
}

func (s *LookupService) Resolve(ctx context.Context, id string) (*alloydoc.Entry, error) {
	return s.ResolveFn(ctx, id)
}
