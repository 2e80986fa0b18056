package errors

import (
	"errors"
	"fmt"
)

// Application error taxonomy. Handlers map these onto HTTP statuses;
// services wrap them with context via fmt.Errorf and %w.

var (
	// ErrNotAuthenticated indicates no valid session was found
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrProfileMissing indicates the user has no mentee/mentor row
	ErrProfileMissing = errors.New("profile missing")

	// ErrFetchFailed indicates a transient backend/database failure.
	// Surfaced to the caller once, never retried automatically.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAccessDenied indicates the user doesn't have permission
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict indicates a conflict with existing data
	ErrConflict = errors.New("conflict")
)

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// FetchFailedError wraps a transient backend failure with context
func FetchFailedError(operation string, err error) error {
	return fmt.Errorf("%s: %v: %w", operation, err, ErrFetchFailed)
}

// AccessDeniedError creates an access denied error with context
func AccessDeniedError(reason string) error {
	if reason != "" {
		return fmt.Errorf("%s: %w", reason, ErrAccessDenied)
	}
	return ErrAccessDenied
}

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
