// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Structural errors: raised at construction time, fail fast.
	ErrInvalidObjectReference = errors.New("invalid object reference")
	ErrInvalidLinkReference   = errors.New("invalid link reference")
	ErrCompositionMismatch    = errors.New("composition mismatch")
	ErrIncompleteMapping      = errors.New("incomplete mapping")
	ErrInvalidTimelineOrder   = errors.New("invalid timeline order")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsStructural reports whether an error is a construction-time
// malformation rather than a configuration or I/O problem.
func IsStructural(err error) bool {
	return errors.Is(err, ErrInvalidObjectReference) ||
		errors.Is(err, ErrInvalidLinkReference) ||
		errors.Is(err, ErrCompositionMismatch) ||
		errors.Is(err, ErrIncompleteMapping) ||
		errors.Is(err, ErrInvalidTimelineOrder)
}
