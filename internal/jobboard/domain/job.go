package domain

import "time"

type Job struct {
	ID          string
	CompanyName string
	Position    string
	Contract    string
	Location    string
	PostedBy    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Application snapshots the applicant's details at apply time. The copies do
// not track later profile edits; they are a historical record.
type Application struct {
	ID            string
	JobID         string
	ApplicantID   string
	ApplicantName string
	Email         string
	Phone         string
	ResumeURL     string
	DateApplied   time.Time
}
