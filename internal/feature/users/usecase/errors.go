// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given key or
	// credential pair.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when the requested email address is
	// already taken by another account.
	ErrDuplicateUser = errors.New("an account already exists with this email")

	// ErrInvalidCredentials is returned when a supplied field is empty or
	// contains embedded whitespace.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
