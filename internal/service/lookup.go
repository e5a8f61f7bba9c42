package service

import (
	"context"
	"fmt"
	"time"

	"najdimajstra/internal/model"
)

// DefaultCandidateLimit caps how many masters a turn suggests
const DefaultCandidateLimit = 5

// CandidateLookup finds masters matching the extracted signals. Identical
// queries must return the same ranking as long as the data is unchanged.
type CandidateLookup interface {
	Search(ctx context.Context, query model.LookupQuery, limit int) ([]model.Candidate, error)
}

// LookupFunc adapts a function to CandidateLookup
type LookupFunc func(ctx context.Context, query model.LookupQuery, limit int) ([]model.Candidate, error)

// Search calls f
func (f LookupFunc) Search(ctx context.Context, query model.LookupQuery, limit int) ([]model.Candidate, error) {
	return f(ctx, query, limit)
}

// BoundedLookup puts a hard deadline on another lookup. The wait is bounded
// even when the wrapped lookup ignores context cancellation.
type BoundedLookup struct {
	next    CandidateLookup
	timeout time.Duration
}

// NewBoundedLookup wraps next with the given timeout. A non-positive timeout
// disables the deadline but results are still capped.
func NewBoundedLookup(next CandidateLookup, timeout time.Duration) *BoundedLookup {
	return &BoundedLookup{next: next, timeout: timeout}
}

type lookupResult struct {
	candidates []model.Candidate
	err        error
}

// Search runs the wrapped lookup and returns at most limit candidates
func (b *BoundedLookup) Search(ctx context.Context, query model.LookupQuery, limit int) ([]model.Candidate, error) {
	if b.next == nil {
		return nil, fmt.Errorf("candidate lookup not configured")
	}
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	// buffered so a late lookup never blocks its goroutine
	done := make(chan lookupResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- lookupResult{err: fmt.Errorf("candidate lookup panicked: %v", r)}
			}
		}()
		candidates, err := b.next.Search(ctx, query, limit)
		done <- lookupResult{candidates: candidates, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("candidate lookup failed: %w", res.err)
		}
		if len(res.candidates) > limit {
			res.candidates = res.candidates[:limit]
		}
		return res.candidates, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("candidate lookup aborted: %w", ctx.Err())
	}
}
