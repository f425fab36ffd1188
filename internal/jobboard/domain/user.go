package domain

import "time"

type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Role         string
	PasswordHash string
	JobsApplied  []JobApplied
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// JobApplied is the user-side view of an application. It is reconstructed
// from the applications table, never stored separately.
type JobApplied struct {
	JobID       string
	DateApplied time.Time
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// AuthContext is the identity resolved by the auth middleware and handed to
// every protected operation.
type AuthContext struct {
	User    *User
	IsAdmin bool
}
