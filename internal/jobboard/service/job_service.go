package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/atharv2608/alphaware-task-backend/internal/errors"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/domain"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/dto"
	"github.com/atharv2608/alphaware-task-backend/pkg/constant"
)

type JobService struct {
	jobs   domain.JobRepository
	logger zerolog.Logger
}

func NewJobService(jobs domain.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, logger: logger}
}

func (s *JobService) Post(ctx context.Context, actor domain.AuthContext, input dto.PostJobInput) (*domain.Job, error) {
	if !actor.IsAdmin {
		return nil, errors.ErrAdminOnly
	}

	if anyBlank(input.CompanyName, input.Position, input.Contract, input.Location) {
		return nil, errors.ErrMissingFields
	}
	if !validContract(input.Contract) {
		return nil, errors.ErrInvalidContract
	}

	now := time.Now()
	job := &domain.Job{
		ID:          uuid.New().String(),
		CompanyName: strings.TrimSpace(input.CompanyName),
		Position:    strings.TrimSpace(input.Position),
		Contract:    input.Contract,
		Location:    strings.TrimSpace(input.Location),
		PostedBy:    actor.User.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Str("posted_by", job.PostedBy).Msg("job posted")

	return job, nil
}

func (s *JobService) Edit(ctx context.Context, actor domain.AuthContext, input dto.EditJobInput) (*domain.Job, error) {
	if !actor.IsAdmin {
		return nil, errors.ErrAdminOnly
	}

	if anyBlank(input.JobID, input.CompanyName, input.Position, input.Contract, input.Location) {
		return nil, errors.ErrMissingFields
	}
	if !validContract(input.Contract) {
		return nil, errors.ErrInvalidContract
	}

	job, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.ErrJobNotFound
	}

	// Existence is revealed above; ownership is the gate here.
	if job.PostedBy != actor.User.ID {
		return nil, errors.ErrNotJobOwner
	}

	job.CompanyName = strings.TrimSpace(input.CompanyName)
	job.Position = strings.TrimSpace(input.Position)
	job.Contract = input.Contract
	job.Location = strings.TrimSpace(input.Location)
	job.UpdatedAt = time.Now()

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

func (s *JobService) Delete(ctx context.Context, actor domain.AuthContext, jobID string) error {
	if !actor.IsAdmin {
		return errors.ErrAdminOnly
	}

	if strings.TrimSpace(jobID) == "" {
		return errors.ErrMissingFields
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return errors.ErrJobNotFound
	}

	if job.PostedBy != actor.User.ID {
		return errors.ErrNotJobOwner
	}

	return s.jobs.Delete(ctx, jobID)
}

func (s *JobService) Apply(ctx context.Context, actor domain.AuthContext, input dto.ApplyJobInput) (*domain.Application, error) {
	if actor.IsAdmin {
		return nil, errors.ErrAdminCannotApply
	}

	if strings.TrimSpace(input.JobID) == "" {
		return nil, errors.ErrMissingFields
	}

	job, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.ErrJobNotFound
	}

	resumeURL := strings.TrimSpace(input.ResumeURL)
	if resumeURL == "" {
		resumeURL = constant.DefaultResumeURL
	}

	// Name, email and phone are snapshots: later profile edits must not
	// rewrite the historical record of who applied with what.
	app := &domain.Application{
		ID:            uuid.New().String(),
		JobID:         job.ID,
		ApplicantID:   actor.User.ID,
		ApplicantName: actor.User.FullName(),
		Email:         actor.User.Email,
		Phone:         actor.User.Phone,
		ResumeURL:     resumeURL,
		DateApplied:   time.Now(),
	}

	inserted, err := s.jobs.AddApplication(ctx, app)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, errors.ErrAlreadyApplied
	}

	s.logger.Info().Str("job_id", job.ID).Str("applicant_id", app.ApplicantID).Msg("job application recorded")

	return app, nil
}

func (s *JobService) GetAll(ctx context.Context, actor domain.AuthContext) ([]domain.Job, error) {
	// Admins browse their own postings; everyone else browses the board.
	if actor.IsAdmin {
		return s.jobs.ListByPoster(ctx, actor.User.ID)
	}
	return s.jobs.ListAll(ctx)
}

func (s *JobService) Applicants(ctx context.Context, actor domain.AuthContext, jobID string) ([]domain.Application, error) {
	if !actor.IsAdmin {
		return nil, errors.ErrAdminOnly
	}

	if strings.TrimSpace(jobID) == "" {
		return nil, errors.ErrMissingFields
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.ErrJobNotFound
	}

	return s.jobs.ListApplications(ctx, job.ID)
}

func validContract(contract string) bool {
	return contract == constant.ContractFullTime || contract == constant.ContractPartTime
}
