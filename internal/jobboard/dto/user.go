package dto

import (
	"time"

	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/domain"
)

// UserOutput is the wire shape of a user record. The password hash never
// leaves the service layer.
type UserOutput struct {
	ID          string             `json:"_id"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	Role        string             `json:"role"`
	JobsApplied []JobAppliedOutput `json:"jobsApplied"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type JobAppliedOutput struct {
	JobID       string    `json:"jobId"`
	DateApplied time.Time `json:"dateApplied"`
}

func NewUserOutput(user *domain.User) UserOutput {
	applied := make([]JobAppliedOutput, 0, len(user.JobsApplied))
	for _, ja := range user.JobsApplied {
		applied = append(applied, JobAppliedOutput{JobID: ja.JobID, DateApplied: ja.DateApplied})
	}

	return UserOutput{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Phone:       user.Phone,
		Role:        user.Role,
		JobsApplied: applied,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
