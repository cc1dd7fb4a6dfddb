package repository

import (
	"context"

	"talentdeck-api/internal/query"
	"talentdeck-api/pkg/models"
)

// CandidateRepository is the contract every candidate store driver
// implements. Filter returns matching candidates without any ordering
// guarantee; ordering is owned by the query engine so that every consumer
// sorts through the same comparator.
type CandidateRepository interface {
	// ListAll returns every candidate in the store
	ListAll(ctx context.Context) ([]models.Candidate, error)

	// Filter returns the candidates matching the spec's predicates
	Filter(ctx context.Context, spec query.Spec) ([]models.Candidate, error)

	// GetByID returns one candidate or a NotFoundError
	GetByID(ctx context.Context, id int) (*models.Candidate, error)

	// Search returns candidates matching a free-text term across
	// name, email and applied role
	Search(ctx context.Context, text string) ([]models.Candidate, error)

	// UpdateStatus applies a partial status/stage/rating update and
	// returns the updated candidate, or a NotFoundError
	UpdateStatus(ctx context.Context, id int, update models.UpdateStatusRequest) (*models.Candidate, error)

	// Import stores a batch of candidates and returns how many were created
	Import(ctx context.Context, candidates []models.Candidate) (int, error)

	// GeneratePDF renders the candidate detail document. There is no
	// fallback for this: an unreachable store is a TransportError.
	GeneratePDF(ctx context.Context, id int) ([]byte, error)

	// Reseed resets the store to the deterministic sample dataset
	Reseed(ctx context.Context) error

	// Ping checks connectivity to the backing store
	Ping(ctx context.Context) error
}
