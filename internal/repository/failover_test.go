package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentdeck-api/internal/query"
	"talentdeck-api/pkg/models"
)

// fakePrimary is a scripted store: every operation returns the configured
// error, or the configured data when err is nil.
type fakePrimary struct {
	candidates []models.Candidate
	err        error
	writeCalls int
}

func (f *fakePrimary) ListAll(ctx context.Context) ([]models.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

func (f *fakePrimary) Filter(ctx context.Context, spec query.Spec) ([]models.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

func (f *fakePrimary) GetByID(ctx context.Context, id int) (*models.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.candidates {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

func (f *fakePrimary) Search(ctx context.Context, text string) ([]models.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

func (f *fakePrimary) UpdateStatus(ctx context.Context, id int, update models.UpdateStatusRequest) (*models.Candidate, error) {
	f.writeCalls++
	if f.err != nil {
		return nil, f.err
	}
	return &f.candidates[0], nil
}

func (f *fakePrimary) Import(ctx context.Context, candidates []models.Candidate) (int, error) {
	f.writeCalls++
	if f.err != nil {
		return 0, f.err
	}
	return len(candidates), nil
}

func (f *fakePrimary) GeneratePDF(ctx context.Context, id int) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-"), nil
}

func (f *fakePrimary) Reseed(ctx context.Context) error {
	f.writeCalls++
	return f.err
}

func (f *fakePrimary) Ping(ctx context.Context) error {
	return f.err
}

func transportErr() error {
	return &TransportError{Op: "list", Err: errors.New("connection refused")}
}

func newTestFailover(primary CandidateRepository) *Failover {
	return NewFailover(primary, NewSeededFallbackStore(), query.NewEngineForLocale("en"))
}

func TestFailover_ReadsPreferPrimary(t *testing.T) {
	primary := &fakePrimary{candidates: []models.Candidate{{ID: 42, Name: "Primary Only"}}}
	failover := newTestFailover(primary)

	list, err := failover.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 42, list[0].ID)
}

func TestFailover_ListAllFallsBackOnTransport(t *testing.T) {
	failover := newTestFailover(&fakePrimary{err: transportErr()})

	list, err := failover.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, list, 6, "transport failure serves the seed dataset")
}

func TestFailover_FilterFallbackUsesSamePipeline(t *testing.T) {
	failover := newTestFailover(&fakePrimary{err: transportErr()})
	spec := query.Spec{Stage: models.StageDesignChallenge, SortField: query.SortByRating, SortDirection: query.SortDesc}

	result, err := failover.Filter(context.Background(), spec)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Charlie Kristen", result[0].Name)
	assert.Equal(t, "Simon Minter", result[1].Name)
}

func TestFailover_FilterFallbackStillValidates(t *testing.T) {
	failover := newTestFailover(&fakePrimary{err: transportErr()})

	_, err := failover.Filter(context.Background(), query.Spec{MonthYear: &query.MonthYear{Year: 2025, Month: 13}})

	require.Error(t, err)
	var validationErr *query.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestFailover_GetByID(t *testing.T) {
	t.Run("falls back on transport failure", func(t *testing.T) {
		failover := newTestFailover(&fakePrimary{err: transportErr()})

		candidate, err := failover.GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "Nishant Talwar", candidate.Name)
	})

	t.Run("not found passes through", func(t *testing.T) {
		failover := newTestFailover(&fakePrimary{err: &NotFoundError{ID: 999}})

		_, err := failover.GetByID(context.Background(), 999)
		require.Error(t, err)
		assert.True(t, IsNotFound(err), "a missing candidate is not a store outage")
	})
}

func TestFailover_SearchFallsBack(t *testing.T) {
	failover := newTestFailover(&fakePrimary{err: transportErr()})

	result, err := failover.Search(context.Background(), "designer")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Charlie Kristen", result[0].Name)
	assert.Equal(t, "Nishant Talwar", result[1].Name)
}

func TestFailover_WritesSurfaceFailures(t *testing.T) {
	primary := &fakePrimary{err: transportErr()}
	failover := newTestFailover(primary)
	ctx := context.Background()

	_, err := failover.UpdateStatus(ctx, 1, models.UpdateStatusRequest{Status: models.StatusAccepted})
	assert.True(t, IsTransport(err), "update must not pretend to succeed")

	_, err = failover.Import(ctx, SeedCandidates())
	assert.True(t, IsTransport(err), "import must not pretend to succeed")

	err = failover.Reseed(ctx)
	assert.True(t, IsTransport(err), "reseed must not pretend to succeed")

	_, err = failover.GeneratePDF(ctx, 1)
	assert.True(t, IsTransport(err), "pdf generation has no fallback")

	assert.Equal(t, 3, primary.writeCalls)
}

func TestFailover_PingReflectsPrimaryOnly(t *testing.T) {
	assert.Error(t, newTestFailover(&fakePrimary{err: transportErr()}).Ping(context.Background()))
	assert.NoError(t, newTestFailover(&fakePrimary{}).Ping(context.Background()))
}
