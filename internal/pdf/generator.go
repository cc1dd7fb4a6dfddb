package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"talentdeck-api/pkg/models"
)

// Generate renders the candidate detail document: contact and process
// fields followed by attachment links, matching what the review drawer
// shows on screen.
func Generate(c models.Candidate) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Candidate %d - %s", c.ID, c.Name), true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 12, "Candidate Details", "", 1, "L", false, 0, "")
	doc.Ln(2)

	location := c.Location
	if location == "" {
		location = "Not specified"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Name", c.Name},
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Applied Role", c.AppliedRole},
		{"Experience", c.Experience},
		{"Status", c.Status},
		{"Current Stage", c.Stage},
		{"Rating", fmt.Sprintf("%.1f / 5.0", c.Rating)},
		{"Location", location},
		{"Application Date", c.ApplicationDate.Format("2006-01-02")},
	}

	for _, row := range rows {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(45, 8, row.label, "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(0, 8, row.value, "", 1, "L", false, 0, "")
	}

	if c.URLs != nil && c.URLs.Count() > 0 {
		doc.Ln(4)
		doc.SetFont("Helvetica", "B", 14)
		doc.CellFormat(0, 10, "Attachments", "", 1, "L", false, 0, "")

		links := []struct {
			label string
			url   string
		}{
			{"Resume", c.URLs.Resume},
			{"Cover Letter", c.URLs.CoverLetter},
			{"Project", c.URLs.Project},
		}
		for _, link := range links {
			if link.url == "" {
				continue
			}
			doc.SetFont("Helvetica", "B", 11)
			doc.CellFormat(45, 8, link.label, "", 0, "L", false, 0, "")
			doc.SetFont("Helvetica", "U", 11)
			doc.SetTextColor(0, 0, 200)
			doc.CellFormat(0, 8, link.url, "", 1, "L", false, 0, link.url)
			doc.SetTextColor(0, 0, 0)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render candidate pdf: %w", err)
	}
	return buf.Bytes(), nil
}
