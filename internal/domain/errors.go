package domain

import "errors"

// Sentinel errors shared by the domain, use cases and adapters.
// Callers add context with fmt.Errorf("%w: ...", ErrX) and match with errors.Is.
var (
	// ErrInvalidInput covers non-positive totals, empty participant sets,
	// all-zero weights and malformed values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyPaid is returned when a split that is already paid is marked paid again.
	ErrAlreadyPaid = errors.New("split already paid")

	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")

	// ErrLocked is returned for mutations against an archived pot.
	ErrLocked = errors.New("pot is archived")
)
