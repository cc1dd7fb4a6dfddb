package query

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"talentdeck-api/pkg/models"
)

// Engine evaluates query specifications against candidate collections.
// It is the single filter/sort implementation shared by every consumer:
// the HTTP layer, the fallback path, and the Postgres driver's ordering.
//
// Apply and Sort are pure: the input slice is never mutated and candidates
// are treated as immutable snapshots for the duration of one query.
type Engine struct {
	collator *collate.Collator
}

// NewEngine creates an engine whose string comparisons collate in the
// given locale, so names with accented characters sort correctly.
func NewEngine(tag language.Tag) *Engine {
	return &Engine{collator: collate.New(tag)}
}

// NewEngineForLocale creates an engine from a BCP 47 locale name,
// falling back to English if the name cannot be parsed.
func NewEngineForLocale(locale string) *Engine {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return NewEngine(tag)
}

// Apply filters the collection by the spec's predicates and orders the
// result per the spec's sort key. A zero spec returns a copy of the input
// in input order. An invalid spec is an error, never an unfiltered result.
func (e *Engine) Apply(candidates []models.Candidate, spec Spec) ([]models.Candidate, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	out := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if e.matches(c, spec) {
			out = append(out, c)
		}
	}

	e.sortInPlace(out, spec)
	return out, nil
}

// Sort orders a copy of the collection by the spec's sort key. With no
// sort field the input order is preserved.
func (e *Engine) Sort(candidates []models.Candidate, spec Spec) []models.Candidate {
	out := make([]models.Candidate, len(candidates))
	copy(out, candidates)
	e.sortInPlace(out, spec)
	return out
}

// matches applies the spec's predicates as a logical AND; absent fields
// impose no constraint.
func (e *Engine) matches(c models.Candidate, spec Spec) bool {
	if spec.Search != "" {
		term := strings.ToLower(spec.Search)
		if !strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Email), term) &&
			!strings.Contains(strings.ToLower(c.AppliedRole), term) {
			return false
		}
	}

	// Exact, case-sensitive equality as stored
	if spec.Role != "" && c.AppliedRole != spec.Role {
		return false
	}
	if spec.Status != "" && c.Status != spec.Status {
		return false
	}
	if spec.Stage != "" && c.Stage != spec.Stage {
		return false
	}

	if my := spec.MonthYear; my != nil {
		if c.ApplicationDate.Year() != my.Year || int(c.ApplicationDate.Month()) != my.Month {
			return false
		}
	}

	return true
}

func (e *Engine) sortInPlace(candidates []models.Candidate, spec Spec) {
	if spec.SortField == "" {
		return
	}

	dir := 1
	if spec.SortDirection == SortDesc {
		dir = -1
	}

	// Stable sort so equal keys keep their input order
	sort.SliceStable(candidates, func(i, j int) bool {
		return dir*e.compare(candidates[i], candidates[j], spec.SortField) < 0
	})
}

func (e *Engine) compare(a, b models.Candidate, field SortField) int {
	switch field {
	case SortByName:
		return e.collator.CompareString(a.Name, b.Name)
	case SortByStage:
		return e.collator.CompareString(a.Stage, b.Stage)
	case SortByAppliedRole:
		return e.collator.CompareString(a.AppliedRole, b.AppliedRole)
	case SortByRating:
		return compareFloats(a.Rating, b.Rating)
	case SortByAttachments:
		return a.Attachments - b.Attachments
	case SortByApplicationDate:
		return compareDates(a.ApplicationDate, b.ApplicationDate)
	default:
		return 0
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareDates compares by calendar date only; time-of-day carries no
// meaning for application dates.
func compareDates(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case ad.Before(bd):
		return -1
	case ad.After(bd):
		return 1
	default:
		return 0
	}
}
