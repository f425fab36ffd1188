package domain

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByEmailOrPhone(ctx context.Context, email, phone string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]Job, error)
	ListByPoster(ctx context.Context, posterID string) ([]Job, error)
	// AddApplication inserts the snapshot unless the (job, applicant) pair
	// already exists. It reports whether the insert took effect.
	AddApplication(ctx context.Context, app *Application) (bool, error)
	ListApplications(ctx context.Context, jobID string) ([]Application, error)
}
