package service

import (
	"math"
	"sort"
	"strings"

	"najdimajstra/internal/model"
	"najdimajstra/internal/utils"
)

// Match reason constants
const (
	ReasonProfessionMatch = "Profession match"
	ReasonLocationMatch   = "Location match"
	ReasonCategoryMatch   = "Serves this category"
	ReasonSpecialisation  = "Specialised in this area"
	ReasonTopRated        = "Top rated"
	ReasonAvailable       = "Available now"
	ReasonGeneralMatch    = "General match"
)

// Ranker handles ranking and scoring of candidate masters
type Ranker struct {
	weightRating       float64
	weightReviews      float64
	weightAvailability float64
}

// NewRanker creates a new ranker with specified weights
func NewRanker(weightRating, weightReviews, weightAvailability float64) *Ranker {
	return &Ranker{
		weightRating:       weightRating,
		weightReviews:      weightReviews,
		weightAvailability: weightAvailability,
	}
}

// RankMasters scores masters and sorts them best first. Ties are broken by
// ID so identical input always yields the same order.
func (r *Ranker) RankMasters(masters []model.Master, filters model.MasterFilters) []model.Candidate {
	results := make([]model.Candidate, 0, len(masters))

	for _, m := range masters {
		ratingScore := r.calculateRatingScore(m.Rating)
		reviewScore := r.calculateReviewScore(m.ReviewCount)
		availabilityScore := 0.0
		if m.Available {
			availabilityScore = 1.0
		}

		candidate := model.Candidate{
			ID:          m.ID,
			Name:        m.Name,
			Profession:  m.Profession,
			Rating:      m.Rating,
			ReviewCount: m.ReviewCount,
			Available:   m.Available,
			Score: (r.weightRating * ratingScore) +
				(r.weightReviews * reviewScore) +
				(r.weightAvailability * availabilityScore),
			MatchedReasons: r.generateMatchedReasons(m, filters),
		}
		if m.Location != nil {
			candidate.Location = *m.Location
		}

		results = append(results, candidate)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	return results
}

// calculateRatingScore normalizes a 0-5 star rating to 0-1
func (r *Ranker) calculateRatingScore(rating float64) float64 {
	score := rating / 5.0
	if score > 1.0 {
		return 1.0
	}
	if score < 0 {
		return 0
	}
	return score
}

// calculateReviewScore saturates with review volume so a handful of reviews
// does not outweigh an established profile.
// Score = 1 - e^(-reviews/20): 10 reviews ~0.39, 20 ~0.63, 60 ~0.95
func (r *Ranker) calculateReviewScore(reviews int) float64 {
	if reviews <= 0 {
		return 0
	}
	return 1.0 - math.Exp(-float64(reviews)/20.0)
}

// generateMatchedReasons explains why a master was suggested
func (r *Ranker) generateMatchedReasons(m model.Master, filters model.MasterFilters) []string {
	reasons := []string{}

	if filters.Profession != "" && utils.FuzzyMatchProfession(filters.Profession, m.Profession) {
		reasons = append(reasons, ReasonProfessionMatch)
	}

	if filters.City != "" && m.Location != nil &&
		strings.Contains(utils.Fold(*m.Location), utils.Fold(filters.City)) {
		reasons = append(reasons, ReasonLocationMatch)
	}

	if filters.Category != "" && m.ServiceCategories.Contains(filters.Category) {
		reasons = append(reasons, ReasonCategoryMatch)
	}

	if filters.Domain != "" && m.Specialisations.Contains(filters.Domain) {
		reasons = append(reasons, ReasonSpecialisation)
	}

	if m.Rating >= 4.5 && m.ReviewCount >= 5 {
		reasons = append(reasons, ReasonTopRated)
	}

	if m.Available {
		reasons = append(reasons, ReasonAvailable)
	}

	if len(reasons) == 0 {
		reasons = append(reasons, ReasonGeneralMatch)
	}

	return reasons
}
