package repo

import "errors"

var (
	// ErrNotFound means the id matched nothing. Delete reports it too, so a
	// second delete of the same id fails instead of silently succeeding.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest means a required argument (the owner email) was missing.
	ErrBadRequest = errors.New("owner email is required")

	ErrEmailTaken = errors.New("email is already in use")
)
