package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"najdimajstra/internal/model"
)

func TestBoundedLookup_PassesThrough(t *testing.T) {
	inner := &recordingLookup{candidates: makeCandidates(2)}
	b := NewBoundedLookup(inner, time.Second)

	query := model.LookupQuery{Category: model.CategoryRegular, City: "Nitra"}
	got, err := b.Search(context.Background(), query, 5)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []model.LookupQuery{query}, inner.queries)
}

func TestBoundedLookup_CapsResults(t *testing.T) {
	b := NewBoundedLookup(&recordingLookup{candidates: makeCandidates(9)}, 0)

	got, err := b.Search(context.Background(), model.LookupQuery{}, 4)
	require.NoError(t, err)
	assert.Len(t, got, 4)

	got, err = b.Search(context.Background(), model.LookupQuery{}, 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultCandidateLimit)
}

func TestBoundedLookup_TimesOutIgnoringLookup(t *testing.T) {
	// ignores ctx entirely
	stubborn := LookupFunc(func(context.Context, model.LookupQuery, int) ([]model.Candidate, error) {
		time.Sleep(300 * time.Millisecond)
		return makeCandidates(1), nil
	})
	b := NewBoundedLookup(stubborn, 25*time.Millisecond)

	start := time.Now()
	_, err := b.Search(context.Background(), model.LookupQuery{}, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestBoundedLookup_WrapsErrors(t *testing.T) {
	cause := errors.New("db down")
	b := NewBoundedLookup(&recordingLookup{err: cause}, time.Second)

	_, err := b.Search(context.Background(), model.LookupQuery{}, 5)
	assert.ErrorIs(t, err, cause)
}

func TestBoundedLookup_RecoversPanics(t *testing.T) {
	b := NewBoundedLookup(LookupFunc(func(context.Context, model.LookupQuery, int) ([]model.Candidate, error) {
		panic("boom")
	}), time.Second)

	_, err := b.Search(context.Background(), model.LookupQuery{}, 5)
	assert.ErrorContains(t, err, "panicked")
}

func TestBoundedLookup_NilInner(t *testing.T) {
	_, err := NewBoundedLookup(nil, time.Second).Search(context.Background(), model.LookupQuery{}, 5)
	assert.Error(t, err)
}
