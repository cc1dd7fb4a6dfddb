package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentdeck-api/pkg/models"
)

var importNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestParseJSON(t *testing.T) {
	input := `[
		{
			"name": "Priya Sharma",
			"email": "priya.s@example.com",
			"applied_role": "Backend Engineer",
			"rating": 4.2,
			"application_date": "2025-03-18",
			"resume_url": "https://example.com/priya.pdf",
			"project_url": "https://example.com/priya-portfolio"
		},
		{
			"name": "Tom Okafor",
			"email": "tom.o@example.com"
		}
	]`

	candidates, err := ParseJSON(strings.NewReader(input), importNow)

	require.NoError(t, err)
	require.Len(t, candidates, 2)

	first := candidates[0]
	assert.Equal(t, "Priya Sharma", first.Name)
	assert.Equal(t, 4.2, first.Rating)
	assert.Equal(t, time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC), first.ApplicationDate)
	assert.Equal(t, 2, first.Attachments, "attachment count derives from the set URLs")
	require.NotNil(t, first.URLs)
	assert.Empty(t, first.URLs.CoverLetter)

	second := candidates[1]
	assert.Equal(t, models.StatusPending, second.Status, "status defaults when absent")
	assert.Equal(t, models.StageScreening, second.Stage, "stage defaults when absent")
	assert.Equal(t, importNow, second.ApplicationDate, "date defaults to the import moment")
	assert.Equal(t, 0, second.Attachments)
	assert.Nil(t, second.URLs)
}

func TestParseJSON_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing email", input: `[{"name": "No Email"}]`},
		{name: "missing name", input: `[{"email": "a@b.com"}]`},
		{name: "rating above five", input: `[{"name": "X", "email": "x@y.com", "rating": 7.5}]`},
		{name: "negative rating", input: `[{"name": "X", "email": "x@y.com", "rating": -1}]`},
		{name: "bad date", input: `[{"name": "X", "email": "x@y.com", "application_date": "18-03-2025"}]`},
		{name: "not an array", input: `{"name": "X"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON(strings.NewReader(tt.input), importNow)
			assert.Error(t, err)
		})
	}
}

func TestParseCSV(t *testing.T) {
	input := "name,email,applied_role,rating,status,application_date,resume_url\n" +
		"Priya Sharma,priya.s@example.com,Backend Engineer,4.2,In Process,2025-03-18,https://example.com/priya.pdf\n" +
		"Tom Okafor,tom.o@example.com,,,,,\n"

	candidates, err := ParseCSV(strings.NewReader(input), importNow)

	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "Priya Sharma", candidates[0].Name)
	assert.Equal(t, "In Process", candidates[0].Status)
	assert.Equal(t, 1, candidates[0].Attachments)
	assert.Equal(t, models.StatusPending, candidates[1].Status)
	assert.Equal(t, importNow, candidates[1].ApplicationDate)
}

func TestParseCSV_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errPart string
	}{
		{name: "missing name column", input: "email,rating\na@b.com,3\n", errPart: "missing required column"},
		{name: "bad rating", input: "name,email,rating\nX,x@y.com,lots\n", errPart: "line 2"},
		{name: "bad record reports line", input: "name,email\nX,x@y.com\n,missing@name.com\n", errPart: "line 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input), importNow)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestParse_DispatchesByExtension(t *testing.T) {
	jsonInput := `[{"name": "X", "email": "x@y.com"}]`
	candidates, err := Parse("upload.JSON", strings.NewReader(jsonInput), importNow)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)

	csvInput := "name,email\nX,x@y.com\n"
	candidates, err = Parse("export.csv", strings.NewReader(csvInput), importNow)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)

	_, err = Parse("resume.pdf", strings.NewReader(""), importNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported import format")
}
