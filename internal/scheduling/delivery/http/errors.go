package http

import (
	"errors"

	"smart-task-scheduler/internal/scheduling"
	pkgErrors "smart-task-scheduler/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var verr *scheduling.ValidationError
	if errors.As(err, &verr) {
		return pkgErrors.NewHTTPError(400, "batch request failed validation").
			WithDetails(verr.Result)
	}

	switch {
	case errors.Is(err, scheduling.ErrMissingTask),
		errors.Is(err, scheduling.ErrMissingTaskID),
		errors.Is(err, scheduling.ErrInvalidPriority),
		errors.Is(err, scheduling.ErrNoTasks),
		errors.Is(err, scheduling.ErrNoAvailability),
		errors.Is(err, scheduling.ErrMissingPreferences),
		errors.Is(err, scheduling.ErrMissingUserID):
		return pkgErrors.NewHTTPError(400, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
