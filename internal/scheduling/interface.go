package scheduling

import (
	"context"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduling/conflict"
)

// UseCase defines the business logic interface for the scheduling domain.
type UseCase interface {
	// ScheduleTask finds, scores and ranks candidate slots for one task.
	ScheduleTask(ctx context.Context, sc model.Scope, input ScheduleTaskInput) (ScheduleTaskOutput, error)

	// ScheduleBatch allocates slots for many tasks in priority order,
	// shrinking availability as it commits each assignment.
	ScheduleBatch(ctx context.Context, sc model.Scope, input BatchScheduleInput) (BatchScheduleOutput, error)

	// ScoreSlot scores one caller-supplied slot against the current
	// context, for UI previews.
	ScoreSlot(ctx context.Context, sc model.Scope, input ScoreSlotInput) (SchedulingSuggestion, error)

	// CheckDisplacements lists existing bookings a task could bump from
	// an arbitrary slot.
	CheckDisplacements(ctx context.Context, sc model.Scope, input CheckDisplacementsInput) ([]conflict.Displacement, error)

	// ValidateBatch runs the pre-flight checks for a batch request
	// without scheduling anything.
	ValidateBatch(ctx context.Context, sc model.Scope, input BatchScheduleInput) (ValidationResult, error)
}
