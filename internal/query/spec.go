package query

import (
	"fmt"
	"strings"

	"talentdeck-api/pkg/models"
)

// SortField identifies a candidate field usable as a sort key
type SortField string

const (
	SortByName            SortField = "name"
	SortByRating          SortField = "rating"
	SortByStage           SortField = "stage"
	SortByAppliedRole     SortField = "applied_role"
	SortByApplicationDate SortField = "application_date"
	SortByAttachments     SortField = "attachments"
)

var sortFields = map[SortField]bool{
	SortByName:            true,
	SortByRating:          true,
	SortByStage:           true,
	SortByAppliedRole:     true,
	SortByApplicationDate: true,
	SortByAttachments:     true,
}

// SortDirection controls ascending or descending order
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// MonthYear selects candidates whose application date falls in one
// calendar month. Month is 1-12.
type MonthYear struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Spec is the combined filter/sort/search parameters for one query.
// All fields are optional and independently combinable; a zero Spec
// matches everything and imposes no ordering.
type Spec struct {
	Search        string        `json:"search,omitempty"`
	Role          string        `json:"role,omitempty"`
	Status        string        `json:"status,omitempty"`
	Stage         string        `json:"stage,omitempty"`
	MonthYear     *MonthYear    `json:"month_year,omitempty"`
	SortField     SortField     `json:"sort_field,omitempty"`
	SortDirection SortDirection `json:"sort_direction,omitempty"`
}

// ValidationError reports a malformed query specification. Invalid specs
// are surfaced to the caller, never coerced into "no filter".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid query specification: %s: %s", e.Field, e.Reason)
}

// Validate checks the spec's closed vocabularies and month bounds
func (s Spec) Validate() error {
	if s.MonthYear != nil {
		if s.MonthYear.Month < 1 || s.MonthYear.Month > 12 {
			return &ValidationError{Field: "month", Reason: fmt.Sprintf("must be 1-12, got %d", s.MonthYear.Month)}
		}
		if s.MonthYear.Year < 1 {
			return &ValidationError{Field: "year", Reason: fmt.Sprintf("must be positive, got %d", s.MonthYear.Year)}
		}
	}

	if s.SortField != "" && !sortFields[s.SortField] {
		return &ValidationError{Field: "sort_field", Reason: fmt.Sprintf("unknown field %q", s.SortField)}
	}

	switch s.SortDirection {
	case "", SortAsc, SortDesc:
	default:
		return &ValidationError{Field: "sort_direction", Reason: fmt.Sprintf("must be asc or desc, got %q", s.SortDirection)}
	}

	// A direction with nothing to sort is a malformed query, not a no-op
	if s.SortDirection != "" && s.SortField == "" {
		return &ValidationError{Field: "sort_direction", Reason: "requires a sort field"}
	}

	return nil
}

// IsZero reports whether the spec carries no filters and no sort
func (s Spec) IsZero() bool {
	return s.Search == "" && s.Role == "" && s.Status == "" && s.Stage == "" &&
		s.MonthYear == nil && s.SortField == ""
}

// CacheKey returns a deterministic key identifying this spec, used for
// caching filter results.
func (s Spec) CacheKey() string {
	var b strings.Builder
	b.WriteString("candidates:q")
	fmt.Fprintf(&b, ":s=%s:r=%s:st=%s:sg=%s", strings.ToLower(s.Search), s.Role, s.Status, s.Stage)
	if s.MonthYear != nil {
		fmt.Fprintf(&b, ":my=%04d-%02d", s.MonthYear.Year, s.MonthYear.Month)
	}
	fmt.Fprintf(&b, ":sf=%s:sd=%s", s.SortField, s.SortDirection)
	return b.String()
}

// State converts the spec to the view-facing query state echo
func (s Spec) State() *models.QueryState {
	state := &models.QueryState{
		Search:        s.Search,
		Role:          s.Role,
		Status:        s.Status,
		Stage:         s.Stage,
		SortField:     string(s.SortField),
		SortDirection: string(s.SortDirection),
	}
	if s.MonthYear != nil {
		state.Year = s.MonthYear.Year
		state.Month = s.MonthYear.Month
	}
	if s.SortField != "" && s.SortDirection == "" {
		state.SortDirection = string(SortAsc)
	}
	return state
}
