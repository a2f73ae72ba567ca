package usecase

import (
	"time"

	pkgLog "smart-task-scheduler/pkg/log"
)

// DefaultMaxSuggestions is the suggestion count returned when the
// caller does not specify one.
const DefaultMaxSuggestions = 5

// batchSuggestionsPerTask is how many alternatives each task gets
// before the batch allocator declares a cross-task conflict.
const batchSuggestionsPerTask = 3

type implUseCase struct {
	l   pkgLog.Logger
	now func() time.Time
}

// New creates a new scheduling UseCase instance.
func New(l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		l:   l,
		now: time.Now,
	}
}

// NewWithClock creates a UseCase with a fixed clock. Intended for tests.
func NewWithClock(l pkgLog.Logger, now func() time.Time) *implUseCase {
	return &implUseCase{
		l:   l,
		now: now,
	}
}
