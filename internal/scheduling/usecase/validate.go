package usecase

import (
	"context"
	"fmt"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/internal/scheduling/rules"
)

// ValidateBatch runs the batch pre-flight checks without scheduling:
// required fields, plus a required-vs-available minutes estimate.
func (uc *implUseCase) ValidateBatch(ctx context.Context, sc model.Scope, input scheduling.BatchScheduleInput) (scheduling.ValidationResult, error) {
	result := uc.validateBatch(input)
	uc.l.Debugf(ctx, "ValidateBatch: user=%s valid=%v required=%dmin available=%dmin",
		sc.UserID, result.Valid, result.RequiredMinutes, result.AvailableMinutes)
	return result, nil
}

func (uc *implUseCase) validateBatch(input scheduling.BatchScheduleInput) scheduling.ValidationResult {
	var errs []string

	if len(input.Tasks) == 0 {
		errs = append(errs, scheduling.ErrNoTasks.Error())
	}
	if len(input.Windows) == 0 {
		errs = append(errs, scheduling.ErrNoAvailability.Error())
	}
	if input.Preferences.WorkingHoursStart == "" && input.Preferences.WorkingHoursEnd == "" {
		errs = append(errs, scheduling.ErrMissingPreferences.Error())
	}
	if input.Preferences.UserID == "" {
		errs = append(errs, scheduling.ErrMissingUserID.Error())
	}

	for i, t := range input.Tasks {
		if t.ID == "" {
			errs = append(errs, fmt.Sprintf("task at index %d has no id", i))
		}
		if !t.Priority.Valid() {
			errs = append(errs, fmt.Sprintf("task %q has invalid priority %q", t.ID, t.Priority))
		}
	}

	result := scheduling.ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}

	// Demand estimate: duration plus buffers per task, falling back to
	// rule defaults by type.
	for _, t := range input.Tasks {
		rule := rules.EffectiveRule(t, input.Rules)
		result.RequiredMinutes += rule.DefaultDuration + rule.BufferBefore + rule.BufferAfter
	}
	for _, w := range input.Windows {
		result.AvailableMinutes += w.FreeMinutes
	}
	result.Sufficient = result.AvailableMinutes >= result.RequiredMinutes

	return result
}
