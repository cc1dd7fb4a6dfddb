package models

import "time"

// Candidate represents a job applicant tracked through the hiring pipeline
type Candidate struct {
	ID              int            `json:"id" gorm:"primaryKey"`
	Name            string         `json:"name" gorm:"index"`
	Email           string         `json:"email" gorm:"uniqueIndex"`
	Phone           string         `json:"phone"`
	AppliedRole     string         `json:"applied_role"`
	Experience      string         `json:"experience"`
	Status          string         `json:"status" gorm:"default:Pending"`
	Stage           string         `json:"stage" gorm:"default:Screening"`
	Rating          float64        `json:"rating" gorm:"default:0"`
	Location        string         `json:"location,omitempty"`
	Attachments     int            `json:"attachments"`
	ApplicationDate time.Time      `json:"application_date"`
	URLs            *CandidateURLs `json:"urls,omitempty" gorm:"serializer:json"`

	// Optional extended profile fields
	ExperienceDetails []ExperienceDetail `json:"experience_details,omitempty" gorm:"serializer:json"`
	Projects          []Project          `json:"projects,omitempty" gorm:"serializer:json"`
	SVGPhoto          string             `json:"svg_photo,omitempty"`
}

// CandidateURLs holds the document links collected for a candidate.
// The attachment count on the candidate is derived from how many are set.
type CandidateURLs struct {
	Resume      string `json:"resume,omitempty"`
	CoverLetter string `json:"cover_letter,omitempty"`
	Project     string `json:"project,omitempty"`
}

// Count returns the number of non-empty URLs
func (u *CandidateURLs) Count() int {
	if u == nil {
		return 0
	}
	n := 0
	for _, v := range []string{u.Resume, u.CoverLetter, u.Project} {
		if v != "" {
			n++
		}
	}
	return n
}

// ExperienceDetail represents one entry of a candidate's work history
type ExperienceDetail struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Project represents a portfolio project attached to a candidate profile
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// TableName sets the GORM table name for candidates
func (Candidate) TableName() string {
	return "candidates"
}
