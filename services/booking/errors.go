package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound means no booking matches the given id or reference number.
var ErrNotFound = errors.New("booking not found")

// ErrInvalidCode means the submitted verification code does not match.
var ErrInvalidCode = errors.New("invalid verification code")

// ValidationError carries the field-level messages for a rejected input.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Errors, "; ")
}

// InvalidTransitionError rejects a status change the lifecycle does not allow.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}
