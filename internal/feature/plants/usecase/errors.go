// Package usecase implements the business logic for the plants feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when the owner key does not reference an
	// existing user.
	ErrUserNotFound = errors.New("user not found")

	// ErrPlantNotFound is returned when no plant matches the given id and
	// owner key pair.
	ErrPlantNotFound = errors.New("plant not found")

	// ErrInvalidHealthHistory is returned when a health history entry falls
	// outside the 1-10 range.
	ErrInvalidHealthHistory = errors.New("health history entries must be between 1 and 10")
)
