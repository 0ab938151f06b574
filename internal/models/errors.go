package models

import "errors"

var (
	// ErrNotFound is returned by repository update/delete when no stored
	// entity carries the target id. Lookups report absence with a bool
	// instead of an error.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned on registration when the email is
	// already on file. The comparison is case-sensitive.
	ErrDuplicateEmail = errors.New("email address already registered")

	// ErrProfileNotFound is returned when a profile id does not belong to
	// the resolved user.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidCredentials is returned by login when no user matches the
	// email and password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
