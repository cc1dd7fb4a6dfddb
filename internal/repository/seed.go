package repository

import (
	"time"

	"talentdeck-api/pkg/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedCandidates returns the fixed sample dataset. Dates are pinned so the
// fallback path stays deterministic across runs and tests. Each call
// returns fresh copies; callers may mutate the result freely.
func SeedCandidates() []models.Candidate {
	return []models.Candidate{
		{
			ID:              1,
			Name:            "Charlie Kristen",
			Email:           "charlie.k@example.com",
			Phone:           "+1234567890",
			AppliedRole:     "Sr. UX Designer",
			Experience:      "5 years",
			Status:          models.StatusInProcess,
			Stage:           models.StageDesignChallenge,
			Rating:          4.0,
			Location:        "Bengaluru",
			Attachments:     3,
			ApplicationDate: date(2025, time.February, 10),
			URLs: &models.CandidateURLs{
				Resume:      "https://example.com/resume/charlie.pdf",
				CoverLetter: "https://example.com/cover/charlie.pdf",
				Project:     "https://example.com/portfolio/charlie",
			},
		},
		{
			ID:              2,
			Name:            "Malaika Brown",
			Email:           "malaika.b@example.com",
			Phone:           "+9876543210",
			AppliedRole:     "Growth Manager",
			Experience:      "3 years",
			Status:          models.StatusInProcess,
			Stage:           models.StageScreening,
			Rating:          3.5,
			Location:        "Remote",
			Attachments:     1,
			ApplicationDate: date(2025, time.January, 31),
			URLs: &models.CandidateURLs{
				Resume: "https://example.com/resume/malaika.pdf",
			},
		},
		{
			ID:              3,
			Name:            "Simon Minter",
			Email:           "simon.m@example.com",
			Phone:           "+1122334455",
			AppliedRole:     "Financial Analyst",
			Experience:      "4 years",
			Status:          models.StatusInProcess,
			Stage:           models.StageDesignChallenge,
			Rating:          2.8,
			Location:        "Mumbai",
			Attachments:     2,
			ApplicationDate: date(2024, time.December, 4),
			URLs: &models.CandidateURLs{
				Resume:  "https://example.com/resume/simon.pdf",
				Project: "https://example.com/projects/simon",
			},
		},
		{
			ID:              4,
			Name:            "Ashley Brooke",
			Email:           "ashley.b@example.com",
			Phone:           "+5566778899",
			AppliedRole:     "Financial Analyst",
			Experience:      "6 years",
			Status:          models.StatusInProcess,
			Stage:           models.StageHRRound,
			Rating:          4.5,
			Location:        "Mumbai",
			Attachments:     3,
			ApplicationDate: date(2025, time.February, 5),
			URLs: &models.CandidateURLs{
				Resume:      "https://example.com/resume/ashley.pdf",
				CoverLetter: "https://example.com/cover/ashley.pdf",
				Project:     "https://example.com/portfolio/ashley",
			},
		},
		{
			ID:              5,
			Name:            "Nishant Talwar",
			Email:           "nishant.t@example.com",
			Phone:           "+1098765432",
			AppliedRole:     "Sr. UX Designer",
			Experience:      "7 years",
			Status:          models.StatusInProcess,
			Stage:           models.StageRound2Interview,
			Rating:          5.0,
			Location:        "Bengaluru",
			Attachments:     2,
			ApplicationDate: date(2024, time.November, 14),
			URLs: &models.CandidateURLs{
				Resume:  "https://example.com/resume/nishant.pdf",
				Project: "https://example.com/portfolio/nishant",
			},
		},
		{
			ID:              6,
			Name:            "Mark Jacobs",
			Email:           "mark.j@example.com",
			Phone:           "+2233445566",
			AppliedRole:     "Growth Manager",
			Experience:      "2 years",
			Status:          models.StatusRejected,
			Stage:           models.StageRejected,
			Rating:          2.0,
			Location:        "Remote",
			Attachments:     1,
			ApplicationDate: date(2025, time.January, 26),
			URLs: &models.CandidateURLs{
				Resume: "https://example.com/resume/mark.pdf",
			},
		},
	}
}
