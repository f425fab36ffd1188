package dto

import (
	"time"

	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/domain"
)

type PostJobInput struct {
	CompanyName string `json:"companyName"`
	Position    string `json:"position"`
	Contract    string `json:"contract"`
	Location    string `json:"location"`
}

type EditJobInput struct {
	JobID       string `json:"jobId"`
	CompanyName string `json:"companyName"`
	Position    string `json:"position"`
	Contract    string `json:"contract"`
	Location    string `json:"location"`
}

type DeleteJobInput struct {
	ID string `json:"_id"`
}

type ApplyJobInput struct {
	JobID     string `json:"jobId"`
	ResumeURL string `json:"resumeURL"`
}

type GetApplicantsInput struct {
	ID string `json:"_id"`
}

// JobOutput deliberately omits the poster's id: applicants don't need to
// know who posted, and admins only ever see their own postings.
type JobOutput struct {
	ID          string    `json:"_id"`
	CompanyName string    `json:"companyName"`
	Position    string    `json:"position"`
	Contract    string    `json:"contract"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ApplicationOutput struct {
	ApplicantID   string    `json:"applicantId"`
	ApplicantName string    `json:"applicantName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ResumeURL     string    `json:"resumeURL"`
	DateApplied   time.Time `json:"dateApplied"`
}

func NewJobOutput(job *domain.Job) JobOutput {
	return JobOutput{
		ID:          job.ID,
		CompanyName: job.CompanyName,
		Position:    job.Position,
		Contract:    job.Contract,
		Location:    job.Location,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}

func NewJobOutputs(jobs []domain.Job) []JobOutput {
	out := make([]JobOutput, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobOutput(&jobs[i]))
	}
	return out
}

func NewApplicationOutput(app *domain.Application) ApplicationOutput {
	return ApplicationOutput{
		ApplicantID:   app.ApplicantID,
		ApplicantName: app.ApplicantName,
		Email:         app.Email,
		Phone:         app.Phone,
		ResumeURL:     app.ResumeURL,
		DateApplied:   app.DateApplied,
	}
}

func NewApplicationOutputs(apps []domain.Application) []ApplicationOutput {
	out := make([]ApplicationOutput, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationOutput(&apps[i]))
	}
	return out
}
