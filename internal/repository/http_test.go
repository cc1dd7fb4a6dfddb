package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentdeck-api/internal/config"
	"talentdeck-api/internal/query"
	"talentdeck-api/pkg/models"
)

func newTestHTTPRepository(t *testing.T, handler http.Handler) (*HTTPRepository, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Repository.Backend.BaseURL = server.URL
	cfg.Repository.Backend.Timeout = 5 * time.Second
	cfg.Repository.Backend.MaxRetries = 2

	return NewHTTPRepository(cfg), server
}

func TestHTTPRepository_ListAll(t *testing.T) {
	repo, _ := newTestHTTPRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/candidates/", r.URL.Path)
		json.NewEncoder(w).Encode(SeedCandidates())
	}))

	candidates, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, candidates, 6)
	assert.Equal(t, "Charlie Kristen", candidates[0].Name)
}

func TestHTTPRepository_Filter_WireFormat(t *testing.T) {
	var gotQuery atomic.Value
	repo, _ := newTestHTTPRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/candidates/filter/", r.URL.Path)
		gotQuery.Store(r.URL.Query())
		json.NewEncoder(w).Encode([]models.Candidate{})
	}))

	spec := query.Spec{
		Search:    "charlie",
		Role:      "Sr. UX Designer",
		MonthYear: &query.MonthYear{Year: 2025, Month: 2},
		SortField: query.SortByRating,
	}
	_, err := repo.Filter(context.Background(), spec)
	require.NoError(t, err)

	params := gotQuery.Load().(url.Values)
	assert.Equal(t, "charlie", params.Get("search"))
	assert.Equal(t, "Sr. UX Designer", params.Get("role"))
	assert.Equal(t, "2025-02", params.Get("month_year"), "month bucket travels as YYYY-MM")
	assert.False(t, params.Has("sort_by"), "ordering stays local to the query engine")
}

func TestHTTPRepository_Filter_RejectsInvalidSpec(t *testing.T) {
	called := false
	repo, _ := newTestHTTPRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := repo.Filter(context.Background(), query.Spec{MonthYear: &query.MonthYear{Year: 2025, Month: 0}})

	require.Error(t, err)
	assert.False(t, called, "invalid specs never reach the backend")
}

func TestHTTPRepository_GetByID_NotFound(t *testing.T) {
	repo, _ := newTestHTTPRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := repo.GetByID(context.Background(), 999)

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsTransport(err), "404 is not an outage")
}

func TestHTTPRepository_CollectionNotFoundIsTransport(t *testing.T) {
	// A 404 on a collection route is a broken backend, not a missing
	// candidate; it must read as an outage so reads fall back.
	var calls atomic.Int32
	repo, _ := newTestHTTPRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := repo.ListAll(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, int32(1), calls.Load(), "a contract violation is not retried")

	_, err = repo.Filter(context.Background(), query.Spec{Search: "charlie"})
	require.Error(t, err)
	assert.True(t, IsTransport(err))
}

func TestHTTPRepository_ReadsRetryServerErrors(t *testing.T) {
	var calls atomic.Int32
	repo, _ := newTestHTTPRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(SeedCandidates())
	}))

	candidates, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, candidates, 6)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPRepository_ReadsExhaustRetries(t *testing.T) {
	var calls atomic.Int32
	repo, _ := newTestHTTPRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := repo.ListAll(context.Background())

	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.Equal(t, int32(3), calls.Load(), "initial attempt plus two retries")
}

func TestHTTPRepository_UpdateStatus(t *testing.T) {
	repo, _ := newTestHTTPRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/candidates/3/status/", r.URL.Path)

		var update models.UpdateStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		assert.Equal(t, models.StatusAccepted, update.Status)

		candidate := SeedCandidates()[2]
		candidate.Status = update.Status
		json.NewEncoder(w).Encode(candidate)
	}))

	candidate, err := repo.UpdateStatus(context.Background(), 3, models.UpdateStatusRequest{Status: models.StatusAccepted})

	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, candidate.Status)
}

func TestHTTPRepository_WritesAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	repo, _ := newTestHTTPRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := repo.UpdateStatus(context.Background(), 1, models.UpdateStatusRequest{Status: models.StatusAccepted})

	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.Equal(t, int32(1), calls.Load(), "a failed write must not be replayed")
}

func TestHTTPRepository_Import(t *testing.T) {
	repo, _ := newTestHTTPRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/candidates/import/", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "candidates.json", header.Filename)

		var uploaded []models.Candidate
		require.NoError(t, json.NewDecoder(file).Decode(&uploaded))
		assert.Len(t, uploaded, 6)

		w.WriteHeader(http.StatusOK)
	}))

	count, err := repo.Import(context.Background(), SeedCandidates())

	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestHTTPRepository_GeneratePDF(t *testing.T) {
	repo, _ := newTestHTTPRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/candidates/1/pdf/", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 fake"))
	}))

	data, err := repo.GeneratePDF(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
}

func TestHTTPRepository_Reseed(t *testing.T) {
	repo, _ := newTestHTTPRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/seed/", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	assert.NoError(t, repo.Reseed(context.Background()))
}

func TestHTTPRepository_PingUnreachable(t *testing.T) {
	repo, server := newTestHTTPRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	err := repo.Ping(context.Background())

	require.Error(t, err)
	assert.True(t, IsTransport(err))
}
