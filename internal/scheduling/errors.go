package scheduling

import (
	"errors"
	"strings"
)

// Domain-specific errors for the scheduling package.
var (
	ErrMissingTask        = errors.New("task is required")
	ErrMissingTaskID      = errors.New("task id is required")
	ErrInvalidPriority    = errors.New("task priority must be high, medium or low")
	ErrNoTasks            = errors.New("task list is empty")
	ErrNoAvailability     = errors.New("availability windows are required")
	ErrMissingPreferences = errors.New("scheduling preferences are required")
	ErrMissingUserID      = errors.New("user id is required")
	ErrValidationFailed   = errors.New("batch request failed validation")
)

// ValidationError carries the pre-flight result when a batch request is
// rejected, so the transport layer can surface the individual messages.
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	return "batch request failed validation: " + strings.Join(e.Result.Errors, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }
