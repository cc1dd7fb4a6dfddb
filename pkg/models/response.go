package models

import "time"

// QueryState echoes the active query parameters back to the view so it can
// render sort indicators and active filter chips.
type QueryState struct {
	Search        string `json:"search,omitempty"`
	Role          string `json:"role,omitempty"`
	Status        string `json:"status,omitempty"`
	Stage         string `json:"stage,omitempty"`
	Year          int    `json:"year,omitempty"`
	Month         int    `json:"month,omitempty"`
	SortField     string `json:"sort_field,omitempty"`
	SortDirection string `json:"sort_direction,omitempty"`
}

// CandidateListResponse is the response for list and filter requests
type CandidateListResponse struct {
	Candidates []Candidate `json:"candidates"`
	Total      int         `json:"total"`
	Query      *QueryState `json:"query,omitempty"`
	Generation int64       `json:"generation"`
	RequestID  string      `json:"request_id"`
}

// CandidateDetailResponse is the response for a single-candidate request.
// The colors are the view's badge colors for the current stage and status.
type CandidateDetailResponse struct {
	Candidate   Candidate   `json:"candidate"`
	Timeline    []StageStep `json:"timeline"`
	StageColor  string      `json:"stage_color"`
	StatusColor string      `json:"status_color"`
	RequestID   string      `json:"request_id"`
}

// ImportResponse reports the outcome of a candidate import
type ImportResponse struct {
	Imported  int    `json:"imported"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
