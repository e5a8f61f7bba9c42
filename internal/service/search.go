package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"najdimajstra/internal/model"
)

// maxFetch bounds how many rows are pulled for ranking
const maxFetch = 50

// MasterRepository is the persistence the master search needs
type MasterRepository interface {
	SearchMasters(ctx context.Context, filters model.MasterFilters, limit int) ([]model.Master, error)
	GetMasterByID(ctx context.Context, id string) (*model.Master, error)
	BatchUpdateEmbeddings(ctx context.Context, items []model.EmbeddingItem) (int, []string)
	LogFeedback(ctx context.Context, sessionID, masterID, action string) error
}

// MasterSearchService is the Postgres-backed candidate lookup
type MasterSearchService struct {
	repo   MasterRepository
	ranker *Ranker
	logger *zap.Logger
}

// NewMasterSearchService creates a new master search service
func NewMasterSearchService(repo MasterRepository, ranker *Ranker, logger *zap.Logger) *MasterSearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MasterSearchService{
		repo:   repo,
		ranker: ranker,
		logger: logger,
	}
}

var _ CandidateLookup = (*MasterSearchService)(nil)

// Search implements CandidateLookup: filter in the database, rank in memory,
// keep the best limit masters
func (s *MasterSearchService) Search(ctx context.Context, query model.LookupQuery, limit int) ([]model.Candidate, error) {
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}

	filters := model.MasterFilters{
		Category:   string(query.Category),
		City:       query.City,
		Profession: string(query.Profession),
		Domain:     string(query.Domain),
	}

	fetch := limit * 4
	if fetch > maxFetch {
		fetch = maxFetch
	}

	masters, err := s.repo.SearchMasters(ctx, filters, fetch)
	if err != nil {
		return nil, fmt.Errorf("search masters: %w", err)
	}

	results := s.ranker.RankMasters(masters, filters)
	if len(results) > limit {
		results = results[:limit]
	}

	s.logger.Debug("master search finished",
		zap.Any("filters", filters),
		zap.Int("fetched", len(masters)),
		zap.Int("returned", len(results)),
	)

	return results, nil
}

// GetMaster retrieves a single master profile
func (s *MasterSearchService) GetMaster(ctx context.Context, id string) (*model.Master, error) {
	return s.repo.GetMasterByID(ctx, id)
}

// UpdateEmbeddings updates profile embeddings for multiple masters
func (s *MasterSearchService) UpdateEmbeddings(ctx context.Context, items []model.EmbeddingItem) (int, []string) {
	return s.repo.BatchUpdateEmbeddings(ctx, items)
}

// LogFeedback records what the user did with a suggested master
func (s *MasterSearchService) LogFeedback(ctx context.Context, sessionID, masterID, action string) error {
	return s.repo.LogFeedback(ctx, sessionID, masterID, action)
}
