package transfer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is the sentinel all validation failures unwrap to.
	ErrValidation = errors.New("validation failed")
	// ErrUnknownStatus is returned when a wire value is not one of the five
	// enumerated statuses.
	ErrUnknownStatus = errors.New("unknown status")
	// ErrInvalidTransition is returned when a status change is not permitted
	// from the current state.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrAlreadyReceived is returned when a receipt confirmation conflicts
	// with an earlier confirmation of the same transfer.
	ErrAlreadyReceived = errors.New("transfer already received")
	// ErrNotFound is returned when a transfer id does not exist.
	ErrNotFound = errors.New("transfer not found")
)

// Violation describes one violated validation rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated rule of an input, not just the
// first. It unwraps to ErrValidation so callers can match with errors.Is.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Field + ": " + v.Message
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Add records a violation.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Message: message})
}
