package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"najdimajstra/internal/model"
)

func strPtr(s string) *string { return &s }

func TestRanker_RatingScore(t *testing.T) {
	r := NewRanker(0.5, 0.3, 0.2)

	assert.Equal(t, 1.0, r.calculateRatingScore(5))
	assert.Equal(t, 1.0, r.calculateRatingScore(7))
	assert.Equal(t, 0.0, r.calculateRatingScore(-1))
	assert.InDelta(t, 0.8, r.calculateRatingScore(4), 1e-9)
}

func TestRanker_ReviewScoreSaturates(t *testing.T) {
	r := NewRanker(0.5, 0.3, 0.2)

	assert.Equal(t, 0.0, r.calculateReviewScore(0))
	assert.InDelta(t, 0.632, r.calculateReviewScore(20), 0.001)
	assert.Greater(t, r.calculateReviewScore(60), r.calculateReviewScore(20))
	assert.Less(t, r.calculateReviewScore(1000), 1.0+1e-9)
}

func TestRanker_Order(t *testing.T) {
	r := NewRanker(0.5, 0.3, 0.2)

	masters := []model.Master{
		{ID: "c", Name: "Busy veteran", Rating: 4.9, ReviewCount: 120, Available: false},
		{ID: "a", Name: "Newcomer", Rating: 5.0, ReviewCount: 1, Available: true},
		{ID: "b", Name: "Reliable", Rating: 4.7, ReviewCount: 80, Available: true},
	}

	got := r.RankMasters(masters, model.MasterFilters{})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func TestRanker_TiesBrokenByID(t *testing.T) {
	r := NewRanker(0.5, 0.3, 0.2)
	masters := []model.Master{
		{ID: "m3", Rating: 4.0, ReviewCount: 10},
		{ID: "m1", Rating: 4.0, ReviewCount: 10},
		{ID: "m2", Rating: 4.0, ReviewCount: 10},
	}

	first := r.RankMasters(masters, model.MasterFilters{})
	second := r.RankMasters([]model.Master{masters[2], masters[0], masters[1]}, model.MasterFilters{})

	assert.Equal(t, []string{"m1", "m2", "m3"}, []string{first[0].ID, first[1].ID, first[2].ID})
	assert.Equal(t, first, second)
}

func TestRanker_MatchedReasons(t *testing.T) {
	r := NewRanker(0.5, 0.3, 0.2)
	filters := model.MasterFilters{
		Category:   "urgent",
		City:       "Žilina",
		Profession: "electrician",
		Domain:     "electrical",
	}

	got := r.RankMasters([]model.Master{{
		ID:                "m1",
		Profession:        "Elektrikár",
		Location:          strPtr("Zilina - Vlčince"),
		Rating:            4.8,
		ReviewCount:       40,
		Available:         true,
		ServiceCategories: model.JSONArray{"urgent", "regular"},
		Specialisations:   model.JSONArray{"electrical"},
	}}, filters)

	require.Len(t, got, 1)
	assert.Equal(t, []string{
		ReasonProfessionMatch,
		ReasonLocationMatch,
		ReasonCategoryMatch,
		ReasonSpecialisation,
		ReasonTopRated,
		ReasonAvailable,
	}, got[0].MatchedReasons)
	assert.Equal(t, "Zilina - Vlčince", got[0].Location)

	plain := r.RankMasters([]model.Master{{ID: "m2", Profession: "Murár", Rating: 3.0}}, filters)
	assert.Equal(t, []string{ReasonGeneralMatch}, plain[0].MatchedReasons)
}
