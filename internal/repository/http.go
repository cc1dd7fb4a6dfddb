package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"talentdeck-api/internal/config"
	"talentdeck-api/internal/logging"
	"talentdeck-api/internal/query"
	"talentdeck-api/pkg/models"
)

// HTTPRepository is the remote-backend driver. It speaks the candidate
// REST contract: /candidates/, /candidates/filter/, /candidates/{id}/,
// /candidates/{id}/status/, /candidates/{id}/pdf/, /candidates/import/
// and /seed/.
type HTTPRepository struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	logger     logging.Logger
}

// NewHTTPRepository creates a driver for the configured remote backend
func NewHTTPRepository(cfg *config.Config) *HTTPRepository {
	return &HTTPRepository{
		baseURL: strings.TrimRight(cfg.Repository.Backend.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Repository.Backend.Timeout,
		},
		maxRetries: cfg.Repository.Backend.MaxRetries,
		logger:     logging.GetGlobalLogger().WithField("component", "http_repository"),
	}
}

// getJSON performs a GET with retries and decodes the JSON response into out.
// Reads are idempotent, so transient failures are retried with backoff.
// id scopes the 404 mapping: on a per-candidate path it means that candidate
// is missing; a 404 on a collection path (id 0) is a broken backend contract
// and reads as a transport failure so the fallback policy can recover.
func (r *HTTPRepository) getJSON(ctx context.Context, op, path string, id int, out interface{}) error {
	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return &TransportError{Op: op, Err: ctx.Err()}
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		req.Header.Set("Accept", "application/json")

		resp, err := r.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusNotFound {
			if id > 0 {
				return &NotFoundError{ID: id}
			}
			return &TransportError{Op: op, Err: fmt.Errorf("backend returned status 404 for %s", path)}
		}
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(body))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(body))
		}

		return json.Unmarshal(body, out)
	}

	return &TransportError{Op: op, Err: lastErr}
}

// do performs a non-retried request, for writes and binary responses
func (r *HTTPRepository) do(ctx context.Context, op, method, path string, contentType string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	if resp.StatusCode >= 500 {
		return resp.StatusCode, nil, &TransportError{Op: op, Err: fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(data))}
	}

	return resp.StatusCode, data, nil
}

// ListAll fetches every candidate from the backend
func (r *HTTPRepository) ListAll(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.getJSON(ctx, "list_all", "/candidates/", 0, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// Filter fetches candidates matching the spec. Sort parameters are not
// forwarded: ordering is owned by the query engine so all paths sort
// through one comparator.
func (r *HTTPRepository) Filter(ctx context.Context, spec query.Spec) ([]models.Candidate, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	if spec.Search != "" {
		params.Set("search", spec.Search)
	}
	if spec.Role != "" {
		params.Set("role", spec.Role)
	}
	if spec.Status != "" {
		params.Set("status", spec.Status)
	}
	if spec.Stage != "" {
		params.Set("stage", spec.Stage)
	}
	if spec.MonthYear != nil {
		// The backend wire format for the month bucket is "YYYY-MM"
		params.Set("month_year", fmt.Sprintf("%04d-%02d", spec.MonthYear.Year, spec.MonthYear.Month))
	}

	path := "/candidates/filter/"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var candidates []models.Candidate
	if err := r.getJSON(ctx, "filter", path, 0, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// GetByID fetches one candidate
func (r *HTTPRepository) GetByID(ctx context.Context, id int) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.getJSON(ctx, "get_by_id", fmt.Sprintf("/candidates/%d/", id), id, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// Search runs a free-text search through the backend's filter endpoint
func (r *HTTPRepository) Search(ctx context.Context, text string) ([]models.Candidate, error) {
	return r.Filter(ctx, query.Spec{Search: text})
}

// UpdateStatus sends a partial update. Writes are not retried: a blind
// retry of a status transition could double-apply it.
func (r *HTTPRepository) UpdateStatus(ctx context.Context, id int, update models.UpdateStatusRequest) (*models.Candidate, error) {
	payload, err := json.Marshal(update)
	if err != nil {
		return nil, err
	}

	status, body, err := r.do(ctx, "update_status", http.MethodPatch,
		fmt.Sprintf("/candidates/%d/status/", id), "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, &NotFoundError{ID: id}
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("backend returned status %d: %s", status, string(body))
	}

	var candidate models.Candidate
	if err := json.Unmarshal(body, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// Import uploads the batch as a JSON file to the backend's import endpoint
func (r *HTTPRepository) Import(ctx context.Context, candidates []models.Candidate) (int, error) {
	payload, err := json.Marshal(candidates)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "candidates.json")
	if err != nil {
		return 0, err
	}
	if _, err := part.Write(payload); err != nil {
		return 0, err
	}
	if err := writer.Close(); err != nil {
		return 0, err
	}

	status, body, err := r.do(ctx, "import", http.MethodPost, "/candidates/import/", writer.FormDataContentType(), &buf)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("backend returned status %d: %s", status, string(body))
	}

	return len(candidates), nil
}

// GeneratePDF fetches the rendered candidate document from the backend
func (r *HTTPRepository) GeneratePDF(ctx context.Context, id int) ([]byte, error) {
	status, body, err := r.do(ctx, "generate_pdf", http.MethodGet, fmt.Sprintf("/candidates/%d/pdf/", id), "", nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, &NotFoundError{ID: id}
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("backend returned status %d", status)
	}
	return body, nil
}

// Reseed asks the backend to reset its sample data
func (r *HTTPRepository) Reseed(ctx context.Context) error {
	status, body, err := r.do(ctx, "reseed", http.MethodPost, "/seed/", "application/json", nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("backend returned status %d: %s", status, string(body))
	}
	return nil
}

// Ping checks backend reachability via the list endpoint
func (r *HTTPRepository) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/candidates/", nil)
	if err != nil {
		return &TransportError{Op: "ping", Err: err}
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "ping", Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 500 {
		return &TransportError{Op: "ping", Err: fmt.Errorf("backend returned status %d", resp.StatusCode)}
	}
	return nil
}
