package models

import "errors"

var (
	ErrUserNotFound       = errors.New("models: user not found")
	ErrSpaceNotFound      = errors.New("models: space not found")
	ErrRentalNotFound     = errors.New("models: rental not found")
	ErrAssessmentNotFound = errors.New("models: assessment not found")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrInvalidCredentials = errors.New("models: invalid credentials")

	// ErrRentalConflict maps to 409: the requested window overlaps an
	// existing rental on the same space.
	ErrRentalConflict = errors.New("models: rental time conflict")
)
