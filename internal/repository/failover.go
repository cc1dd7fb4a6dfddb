package repository

import (
	"context"

	"talentdeck-api/internal/logging"
	"talentdeck-api/internal/query"
	"talentdeck-api/pkg/models"
)

// Failover wraps a primary driver with the read-fallback policy: when the
// primary is unreachable, reads are served from the fallback store through
// the exact same filter pipeline, so a backend outage is invisible to list
// and detail views. Writes are never mocked; their failures surface so the
// caller cannot mistake a dead backend for a successful state change.
type Failover struct {
	primary  CandidateRepository
	fallback *FallbackStore
	engine   *query.Engine
	logger   logging.Logger
}

// NewFailover creates a failover wrapper around the primary driver
func NewFailover(primary CandidateRepository, fallback *FallbackStore, engine *query.Engine) *Failover {
	return &Failover{
		primary:  primary,
		fallback: fallback,
		engine:   engine,
		logger:   logging.GetGlobalLogger().WithField("component", "repository_failover"),
	}
}

func (f *Failover) recovered(op string, err error) {
	f.logger.Warn("Primary candidate store unreachable, serving fallback dataset", map[string]interface{}{
		"operation": op,
		"error":     err.Error(),
	})
}

// ListAll returns all candidates, falling back to the seed dataset
func (f *Failover) ListAll(ctx context.Context) ([]models.Candidate, error) {
	candidates, err := f.primary.ListAll(ctx)
	if err != nil {
		if !IsTransport(err) {
			return nil, err
		}
		f.recovered("list_all", err)
		return f.fallback.List(), nil
	}
	return candidates, nil
}

// Filter returns matching candidates, applying the same predicates to the
// fallback dataset when the primary is unreachable
func (f *Failover) Filter(ctx context.Context, spec query.Spec) ([]models.Candidate, error) {
	candidates, err := f.primary.Filter(ctx, spec)
	if err != nil {
		if !IsTransport(err) {
			return nil, err
		}
		f.recovered("filter", err)
		return f.engine.Apply(f.fallback.List(), spec)
	}
	return candidates, nil
}

// GetByID returns one candidate; NotFound passes through untouched
func (f *Failover) GetByID(ctx context.Context, id int) (*models.Candidate, error) {
	candidate, err := f.primary.GetByID(ctx, id)
	if err != nil {
		if !IsTransport(err) {
			return nil, err
		}
		f.recovered("get_by_id", err)
		return f.fallback.Get(id)
	}
	return candidate, nil
}

// Search runs a free-text search, falling back to the engine's search
// predicate over the seed dataset
func (f *Failover) Search(ctx context.Context, text string) ([]models.Candidate, error) {
	candidates, err := f.primary.Search(ctx, text)
	if err != nil {
		if !IsTransport(err) {
			return nil, err
		}
		f.recovered("search", err)
		return f.engine.Apply(f.fallback.List(), query.Spec{Search: text})
	}
	return candidates, nil
}

// UpdateStatus is a write: failures always surface
func (f *Failover) UpdateStatus(ctx context.Context, id int, update models.UpdateStatusRequest) (*models.Candidate, error) {
	return f.primary.UpdateStatus(ctx, id, update)
}

// Import is a write: failures always surface
func (f *Failover) Import(ctx context.Context, candidates []models.Candidate) (int, error) {
	return f.primary.Import(ctx, candidates)
}

// GeneratePDF has no local fallback by contract
func (f *Failover) GeneratePDF(ctx context.Context, id int) ([]byte, error) {
	return f.primary.GeneratePDF(ctx, id)
}

// Reseed is a write: failures always surface
func (f *Failover) Reseed(ctx context.Context) error {
	return f.primary.Reseed(ctx)
}

// Ping reports primary connectivity; the fallback store never counts as healthy
func (f *Failover) Ping(ctx context.Context) error {
	return f.primary.Ping(ctx)
}
