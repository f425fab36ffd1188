package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/atharv2608/alphaware-task-backend/internal/errors"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/domain"
	repo "github.com/atharv2608/alphaware-task-backend/internal/jobboard/repository/postgres"
)

var userColumns = []string{"id", "first_name", "last_name", "email", "phone", "role", "password_hash", "created_at", "updated_at"}

func userRow(id, email string) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).
		AddRow(id, "Jane", "Doe", email, "555-0100", "user", "hash", time.Now(), time.Now())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()
	userEmail := "test@example.com"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(userEmail).
			WillReturnRows(userRow("user-123", userEmail))
		mock.ExpectQuery("SELECT job_id, date_applied").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows([]string{"job_id", "date_applied"}).
				AddRow("job-1", time.Now()))

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
		require.Len(t, user.JobsApplied, 1)
		assert.Equal(t, "job-1", user.JobsApplied[0].JobID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(userEmail).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err) // Should return nil user, nil error
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(userEmail).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, userEmail)
		assert.Error(t, err)
	})
}

func TestUserRepository_GetByEmailOrPhone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("match", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs("a@b.com", "555-0100").
			WillReturnRows(userRow("user-123", "a@b.com"))

		user, err := r.GetByEmailOrPhone(ctx, "a@b.com", "555-0100")
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
	})

	t.Run("no match", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs("a@b.com", "555-0100").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmailOrPhone(ctx, "a@b.com", "555-0100")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("success with empty history", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs("user-123").
			WillReturnRows(userRow("user-123", "a@b.com"))
		mock.ExpectQuery("SELECT job_id, date_applied").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows([]string{"job_id", "date_applied"}))

		user, err := r.GetByID(ctx, "user-123")
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
		assert.Empty(t, user.JobsApplied)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	userToCreate := &domain.User{
		ID:           "user-123",
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "new@example.com",
		Phone:        "555-0100",
		Role:         "user",
		PasswordHash: "new-hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(userToCreate.ID, userToCreate.FirstName, userToCreate.LastName,
				userToCreate.Email, userToCreate.Phone, userToCreate.Role,
				userToCreate.PasswordHash, userToCreate.CreatedAt, userToCreate.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, userToCreate)
		assert.NoError(t, err)
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(userToCreate.ID, userToCreate.FirstName, userToCreate.LastName,
				userToCreate.Email, userToCreate.Phone, userToCreate.Role,
				userToCreate.PasswordHash, userToCreate.CreatedAt, userToCreate.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		err := r.Create(ctx, userToCreate)
		assert.ErrorIs(t, err, apperr.ErrUserAlreadyExists)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(userToCreate.ID, userToCreate.FirstName, userToCreate.LastName,
				userToCreate.Email, userToCreate.Phone, userToCreate.Role,
				userToCreate.PasswordHash, userToCreate.CreatedAt, userToCreate.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, userToCreate)
		assert.Error(t, err)
	})
}
