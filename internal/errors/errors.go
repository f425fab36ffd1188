package errors

import (
	"errors"
)

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidContract    = errors.New("contract must be Full Time or Part Time")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("unauthorized request")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrStaleToken         = errors.New("access token refers to a removed account")
	ErrAdminOnly          = errors.New("unauthorised access")
	ErrAdminCannotApply   = errors.New("admin account cannot apply")
	ErrNotJobOwner        = errors.New("don't have access to this job")
	ErrUserNotFound       = errors.New("user not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrAlreadyApplied     = errors.New("you have already applied for this job")
)
