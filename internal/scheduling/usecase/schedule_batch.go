package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduling"
)

// ScheduleBatch allocates slots for many tasks sequentially: each
// committed assignment shrinks the availability the next task sees.
// Cross-task collisions become Conflict entries; the batch never forces
// displacement of its own assignments.
func (uc *implUseCase) ScheduleBatch(ctx context.Context, sc model.Scope, input scheduling.BatchScheduleInput) (scheduling.BatchScheduleOutput, error) {
	validation := uc.validateBatch(input)
	if !validation.Valid {
		uc.l.Warnf(ctx, "ScheduleBatch: user=%s validation failed: %v", sc.UserID, validation.Errors)
		return scheduling.BatchScheduleOutput{}, &scheduling.ValidationError{Result: validation}
	}

	tasks := orderTasks(input.Tasks, input.RespectPriority)
	availability := cloneWindows(input.Windows)

	out := scheduling.BatchScheduleOutput{RunID: uuid.NewString()}

	for _, task := range tasks {
		suggestions := uc.suggest(scheduling.ScheduleTaskInput{
			Task:           task,
			Windows:        availability,
			Rules:          input.Rules,
			ProtectedSlots: input.ProtectedSlots,
			Existing:       input.Existing,
			Preferences:    input.Preferences,
		}, batchSuggestionsPerTask)

		if len(suggestions) == 0 {
			out.Unschedulable = append(out.Unschedulable, scheduling.UnschedulableTask{
				TaskID: task.ID,
				Reason: "no slots fit requirements",
			})
			continue
		}

		chosen, ok := firstNonColliding(suggestions, out.Scheduled)
		if !ok {
			out.Conflicts = append(out.Conflicts, scheduling.BatchConflict{
				TaskID:             task.ID,
				ConflictingTaskIDs: collidingTaskIDs(suggestions, out.Scheduled),
				Reason:             "all suggested slots collide with tasks scheduled earlier in this batch; consider rescheduling them or extending working hours",
			})
			continue
		}

		out.Scheduled = append(out.Scheduled, scheduling.ScheduledAssignment{
			TaskID:    task.ID,
			Content:   task.Content,
			Slot:      chosen.Slot,
			Score:     chosen.Score,
			Reasoning: chosen.Reasoning,
			Event:     uc.buildEventPayload(task, chosen.Slot, input.Preferences),
		})
		availability = consumeSlot(availability, chosen.Slot)
	}

	out.Summary = scheduling.BatchSummary{
		ScheduledCount:     len(out.Scheduled),
		ConflictCount:      len(out.Conflicts),
		UnschedulableCount: len(out.Unschedulable),
	}
	for _, a := range out.Scheduled {
		out.Summary.TotalMinutes += a.Slot.Minutes()
	}

	uc.l.Infof(ctx, "ScheduleBatch: user=%s run=%s scheduled=%d conflicts=%d unschedulable=%d",
		sc.UserID, out.RunID, out.Summary.ScheduledCount, out.Summary.ConflictCount, out.Summary.UnschedulableCount)

	return out, nil
}

// orderTasks sorts by priority descending, then due date ascending with
// undated tasks last, then creation time. Without respectPriority the
// submitted order is preserved.
func orderTasks(tasks []model.Task, respectPriority bool) []model.Task {
	ordered := make([]model.Task, len(tasks))
	copy(ordered, tasks)
	if !respectPriority {
		return ordered
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Priority.Weight() != b.Priority.Weight() {
			return a.Priority.Weight() > b.Priority.Weight()
		}
		switch {
		case a.DueDate != nil && b.DueDate == nil:
			return true
		case a.DueDate == nil && b.DueDate != nil:
			return false
		case a.DueDate != nil && b.DueDate != nil && !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return ordered
}

// firstNonColliding scans suggestions in rank order for the first slot
// free of overlap with anything already assigned in this batch.
func firstNonColliding(suggestions []scheduling.SchedulingSuggestion, assigned []scheduling.ScheduledAssignment) (scheduling.SchedulingSuggestion, bool) {
	for _, s := range suggestions {
		if !collides(s.Slot, assigned) {
			return s, true
		}
	}
	return scheduling.SchedulingSuggestion{}, false
}

func collides(slot model.TimeSlot, assigned []scheduling.ScheduledAssignment) bool {
	for _, a := range assigned {
		if slot.Overlaps(a.Slot) {
			return true
		}
	}
	return false
}

// collidingTaskIDs names the already-assigned tasks that blocked every
// suggestion, deduplicated in assignment order.
func collidingTaskIDs(suggestions []scheduling.SchedulingSuggestion, assigned []scheduling.ScheduledAssignment) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, a := range assigned {
		for _, s := range suggestions {
			if s.Slot.Overlaps(a.Slot) && !seen[a.TaskID] {
				seen[a.TaskID] = true
				ids = append(ids, a.TaskID)
			}
		}
	}
	return ids
}
