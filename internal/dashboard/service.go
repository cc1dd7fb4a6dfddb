package dashboard

import (
	"context"
	"sync/atomic"

	"talentdeck-api/internal/cache"
	"talentdeck-api/internal/logging"
	"talentdeck-api/internal/query"
	"talentdeck-api/internal/repository"
	"talentdeck-api/pkg/models"
)

// QueryResult is what the view consumes: ordered candidate snapshots, the
// active query specification, and the generation token that produced them.
type QueryResult struct {
	Candidates []models.Candidate
	Spec       query.Spec
	Generation int64
}

// Service orchestrates the repository, the query engine and the optional
// query cache behind one view-facing API.
//
// Every query claims a generation token from an atomic counter. A caller
// holding results from an earlier generation can detect with Current that
// a newer query has been issued and discard the stale response instead of
// letting a slow request overwrite a fresher one.
type Service struct {
	repo       repository.CandidateRepository
	engine     *query.Engine
	queryCache *cache.QueryCache // nil when caching is disabled
	generation atomic.Int64
	logger     logging.Logger
}

// NewService creates a dashboard service. queryCache may be nil.
func NewService(repo repository.CandidateRepository, engine *query.Engine, queryCache *cache.QueryCache) *Service {
	return &Service{
		repo:       repo,
		engine:     engine,
		queryCache: queryCache,
		logger:     logging.GetGlobalLogger().WithField("component", "dashboard_service"),
	}
}

// Current reports whether the given generation is still the latest issued
// query. Stale results should be discarded by the caller.
func (s *Service) Current(generation int64) bool {
	return s.generation.Load() == generation
}

// ExecuteQuery validates the spec, fetches matching candidates and orders
// them through the engine. Fallback recovery for unreachable stores
// happens inside the repository; cache hits skip the store entirely.
func (s *Service) ExecuteQuery(ctx context.Context, spec query.Spec) (*QueryResult, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	generation := s.generation.Add(1)
	key := spec.CacheKey()

	if s.queryCache != nil {
		if candidates, ok := s.queryCache.Get(ctx, key); ok {
			return &QueryResult{Candidates: candidates, Spec: spec, Generation: generation}, nil
		}
	}

	candidates, err := s.repo.Filter(ctx, spec)
	if err != nil {
		return nil, err
	}

	sorted := s.engine.Sort(candidates, spec)

	if s.queryCache != nil {
		s.queryCache.Set(ctx, key, sorted)
	}

	return &QueryResult{Candidates: sorted, Spec: spec, Generation: generation}, nil
}

// ListAll returns every candidate in store order
func (s *Service) ListAll(ctx context.Context) ([]models.Candidate, error) {
	return s.repo.ListAll(ctx)
}

// Get returns one candidate by id
func (s *Service) Get(ctx context.Context, id int) (*models.Candidate, error) {
	return s.repo.GetByID(ctx, id)
}

// Search runs a free-text search and returns matches in store order
func (s *Service) Search(ctx context.Context, text string) ([]models.Candidate, error) {
	return s.repo.Search(ctx, text)
}

// UpdateStatus applies a partial candidate update. Write failures surface
// to the caller; the cache is invalidated on success.
func (s *Service) UpdateStatus(ctx context.Context, id int, update models.UpdateStatusRequest) (*models.Candidate, error) {
	candidate, err := s.repo.UpdateStatus(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return candidate, nil
}

// Import stores a batch of imported candidates
func (s *Service) Import(ctx context.Context, candidates []models.Candidate) (int, error) {
	count, err := s.repo.Import(ctx, candidates)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return count, nil
}

// GeneratePDF renders the candidate detail document; no fallback exists
func (s *Service) GeneratePDF(ctx context.Context, id int) ([]byte, error) {
	return s.repo.GeneratePDF(ctx, id)
}

// Reseed resets the store to the sample dataset
func (s *Service) Reseed(ctx context.Context) error {
	if err := s.repo.Reseed(ctx); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.queryCache == nil {
		return
	}
	if err := s.queryCache.Invalidate(ctx); err != nil {
		s.logger.Warn("Failed to invalidate query cache after write", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
