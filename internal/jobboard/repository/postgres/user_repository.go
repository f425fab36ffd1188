package postgres

//go:generate mockgen -destination=../../../mocks/mock_user_repository.go -package=mocks github.com/atharv2608/alphaware-task-backend/internal/jobboard/domain UserRepository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperr "github.com/atharv2608/alphaware-task-backend/internal/errors"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/domain"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, first_name, last_name, email, phone, role, password_hash, created_at, updated_at`

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 LIMIT 1;`, userColumns)

	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil || user == nil {
		return nil, err
	}

	if err := r.loadJobsApplied(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) GetByEmailOrPhone(ctx context.Context, email, phone string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 OR phone = $2 LIMIT 1;`, userColumns)

	return r.scanUser(r.db.QueryRow(ctx, query, email, phone))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1;`, userColumns)

	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil || user == nil {
		return nil, err
	}

	if err := r.loadJobsApplied(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, first_name, last_name, email, phone, role, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, user.ID, user.FirstName, user.LastName, user.Email, user.Phone, user.Role,
		user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		// The service pre-checks for duplicates, but the unique constraints
		// are what hold under concurrent registrations.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperr.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Phone,
		&user.Role, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// loadJobsApplied rebuilds the user-side mirror of the relationship from the
// applications table, the single source of truth.
func (r *UserRepository) loadJobsApplied(ctx context.Context, user *domain.User) error {
	rows, err := r.db.Query(ctx, `
		SELECT job_id, date_applied
		FROM applications
		WHERE applicant_id = $1
		ORDER BY date_applied;
	`, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load applied jobs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ja domain.JobApplied
		if err := rows.Scan(&ja.JobID, &ja.DateApplied); err != nil {
			return fmt.Errorf("failed to scan applied job: %w", err)
		}
		user.JobsApplied = append(user.JobsApplied, ja)
	}

	return rows.Err()
}
