package alloydoc

import "context"

// LookupService resolves type queries against the catalog.
type LookupService interface {
	// LookupType returns catalog entries ranked by similarity to the query.
	// Returns EINVALID for a blank query or a non-positive limit.
	// Returns an empty slice, not an error, when nothing matches.
	LookupType(ctx context.Context, req LookupRequest) ([]MatchResult, error)

	// Resolve returns the entry with the given id.
	// Returns ENOTFOUND if the entry does not exist.
	Resolve(ctx context.Context, id string) (*Entry, error)
}

// LookupRequest is a type lookup query.
type LookupRequest struct {
	Query string `json:"query"`

	// Limit caps the number of results. Nil means DefaultLimit.
	Limit *int `json:"limit,omitempty"`
}

// Validate returns an error if the request is not servable.
func (r *LookupRequest) Validate() error {
	if Normalize(r.Query) == "" {
		return Errorf(EINVALID, "query required")
	}
	if r.Limit != nil && *r.Limit < 1 {
		return Errorf(EINVALID, "limit must be a positive integer, got %d", *r.Limit)
	}
	return nil
}

// EffectiveLimit returns the requested limit, DefaultLimit when unset,
// clamped to MaxLimit.
func (r *LookupRequest) EffectiveLimit() int {
	if r.Limit == nil {
		return DefaultLimit
	}
	return min(*r.Limit, MaxLimit)
}
