package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"talentdeck-api/pkg/models"
	"talentdeck-api/pkg/utils"
)

// record is the flat import shape: the original export format carries the
// document URLs as individual columns rather than a nested object.
type record struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	AppliedRole     string  `json:"applied_role"`
	Experience      string  `json:"experience"`
	Status          string  `json:"status"`
	Stage           string  `json:"stage"`
	Rating          float64 `json:"rating"`
	Location        string  `json:"location"`
	ApplicationDate string  `json:"application_date"`
	ResumeURL       string  `json:"resume_url"`
	CoverLetterURL  string  `json:"cover_letter_url"`
	ProjectURL      string  `json:"project_url"`
}

func (rec record) toCandidate(now time.Time) (models.Candidate, error) {
	if rec.Name == "" || rec.Email == "" {
		return models.Candidate{}, fmt.Errorf("candidate record needs name and email")
	}
	if rec.Rating < 0 || rec.Rating > 5 {
		return models.Candidate{}, fmt.Errorf("candidate %q: rating %.2f outside [0,5]", rec.Name, rec.Rating)
	}

	applicationDate := now
	if rec.ApplicationDate != "" {
		parsed, err := time.Parse("2006-01-02", rec.ApplicationDate)
		if err != nil {
			return models.Candidate{}, fmt.Errorf("candidate %q: bad application_date %q: %w", rec.Name, rec.ApplicationDate, err)
		}
		applicationDate = parsed
	}

	var urls *models.CandidateURLs
	if rec.ResumeURL != "" || rec.CoverLetterURL != "" || rec.ProjectURL != "" {
		urls = &models.CandidateURLs{
			Resume:      rec.ResumeURL,
			CoverLetter: rec.CoverLetterURL,
			Project:     rec.ProjectURL,
		}
	}

	return models.Candidate{
		Name:            rec.Name,
		Email:           rec.Email,
		Phone:           rec.Phone,
		AppliedRole:     rec.AppliedRole,
		Experience:      rec.Experience,
		Status:          utils.GetStringOrDefault(rec.Status, models.StatusPending),
		Stage:           utils.GetStringOrDefault(rec.Stage, models.StageScreening),
		Rating:          rec.Rating,
		Location:        rec.Location,
		Attachments:     urls.Count(),
		ApplicationDate: applicationDate,
		URLs:            urls,
	}, nil
}

// Parse decodes an import file by extension (.json or .csv). now supplies
// the application date for records that carry none.
func Parse(filename string, r io.Reader, now time.Time) ([]models.Candidate, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return ParseJSON(r, now)
	case ".csv":
		return ParseCSV(r, now)
	default:
		return nil, fmt.Errorf("unsupported import format %q: expected .json or .csv", filepath.Ext(filename))
	}
}

// ParseJSON decodes a JSON array of candidate records
func ParseJSON(r io.Reader, now time.Time) ([]models.Candidate, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode candidate import: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(records))
	for _, rec := range records {
		candidate, err := rec.toCandidate(now)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// ParseCSV decodes a header-first CSV of candidate records. Column names
// match the JSON field names.
func ParseCSV(r io.Reader, now time.Time) ([]models.Candidate, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, fmt.Errorf("csv import missing required column %q", "name")
	}

	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var candidates []models.Candidate
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		rec := record{
			Name:            field(row, "name"),
			Email:           field(row, "email"),
			Phone:           field(row, "phone"),
			AppliedRole:     field(row, "applied_role"),
			Experience:      field(row, "experience"),
			Status:          field(row, "status"),
			Stage:           field(row, "stage"),
			Location:        field(row, "location"),
			ApplicationDate: field(row, "application_date"),
			ResumeURL:       field(row, "resume_url"),
			CoverLetterURL:  field(row, "cover_letter_url"),
			ProjectURL:      field(row, "project_url"),
		}
		if raw := field(row, "rating"); raw != "" {
			rating, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("csv line %d: bad rating %q", line, raw)
			}
			rec.Rating = rating
		}

		candidate, err := rec.toCandidate(now)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}
