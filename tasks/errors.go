package tasks

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed caller input: empty text or an
	// unrecognized priority.
	ErrValidation = errors.New("invalid task")

	// ErrNotFound marks a reference to an id the store does not hold.
	ErrNotFound = errors.New("task not found")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFound(id int) error {
	return fmt.Errorf("%w: %d", ErrNotFound, id)
}
