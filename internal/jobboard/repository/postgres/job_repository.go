package postgres

//go:generate mockgen -destination=../../../mocks/mock_job_repository.go -package=mocks github.com/atharv2608/alphaware-task-backend/internal/jobboard/domain JobRepository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/domain"
)

type JobRepository struct {
	db DB
}

func NewJobRepository(db DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, company_name, position, contract, location, posted_by, created_at, updated_at`

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO jobs (id, company_name, position, contract, location, posted_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, job.ID, job.CompanyName, job.Position, job.Contract, job.Location,
		job.PostedBy, job.CreatedAt, job.UpdatedAt)

	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1 LIMIT 1;`, jobColumns)

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(&job.ID, &job.CompanyName, &job.Position,
		&job.Contract, &job.Location, &job.PostedBy, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	// posted_by is immutable; the update never touches it.
	_, err := r.db.Exec(ctx, `
        UPDATE jobs
        SET company_name = $2, position = $3, contract = $4, location = $5, updated_at = $6
        WHERE id = $1
    `, job.ID, job.CompanyName, job.Position, job.Contract, job.Location, job.UpdatedAt)

	return err
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	return err
}

func (r *JobRepository) ListAll(ctx context.Context) ([]domain.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs ORDER BY created_at DESC;`, jobColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

func (r *JobRepository) ListByPoster(ctx context.Context, posterID string) ([]domain.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE posted_by = $1 ORDER BY created_at DESC;`, jobColumns)

	rows, err := r.db.Query(ctx, query, posterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// AddApplication relies on the UNIQUE (job_id, applicant_id) constraint: a
// duplicate apply inserts zero rows instead of failing, and two concurrent
// applies for the same pair cannot both report success.
func (r *JobRepository) AddApplication(ctx context.Context, app *domain.Application) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        INSERT INTO applications (id, job_id, applicant_id, applicant_name, email, phone, resume_url, date_applied)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (job_id, applicant_id) DO NOTHING
    `, app.ID, app.JobID, app.ApplicantID, app.ApplicantName, app.Email, app.Phone,
		app.ResumeURL, app.DateApplied)
	if err != nil {
		return false, fmt.Errorf("failed to add application: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *JobRepository) ListApplications(ctx context.Context, jobID string) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, job_id, applicant_id, applicant_name, email, phone, resume_url, date_applied
		FROM applications
		WHERE job_id = $1
		ORDER BY date_applied;
	`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(&app.ID, &app.JobID, &app.ApplicantID, &app.ApplicantName,
			&app.Email, &app.Phone, &app.ResumeURL, &app.DateApplied); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, app)
	}

	return apps, rows.Err()
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.CompanyName, &job.Position, &job.Contract,
			&job.Location, &job.PostedBy, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}
