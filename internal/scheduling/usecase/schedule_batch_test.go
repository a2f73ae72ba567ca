package usecase_test

import (
	"context"
	"errors"
	"testing"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/internal/scheduling/usecase"
	"smart-task-scheduler/pkg/log"
)

func batchTask(id string, p model.Priority, minutes int) model.Task {
	return model.Task{
		ID:           id,
		Content:      "Batch item " + id,
		Priority:     p,
		TimeEstimate: intPtr(minutes),
		CreatedAt:    day,
	}
}

func TestScheduleBatchPriorityWinsScarceSlot(t *testing.T) {
	uc := usecase.NewWithClock(log.NewNoop(), fixedClock)

	input := scheduling.BatchScheduleInput{
		Tasks: []model.Task{
			batchTask("low-a", model.PriorityLow, 60),
			batchTask("high-b", model.PriorityHigh, 60),
		},
		Windows:         []model.AvailabilityWindow{freeWindow([2]int{9, 10})},
		Preferences:     prefs(),
		RespectPriority: true,
	}

	out, err := uc.ScheduleBatch(context.Background(), model.Scope{UserID: "user-1"}, input)
	if err != nil {
		t.Fatalf("ScheduleBatch: %v", err)
	}

	if len(out.Scheduled) != 1 || out.Scheduled[0].TaskID != "high-b" {
		t.Fatalf("the single slot must go to the high-priority task, got %+v", out.Scheduled)
	}
	if len(out.Unschedulable) != 1 || out.Unschedulable[0].TaskID != "low-a" {
		t.Fatalf("low-a should be reported unschedulable, got %+v", out.Unschedulable)
	}
	if out.Scheduled[0].Event.ColorID != "11" {
		t.Errorf("high-priority event color = %q, want 11", out.Scheduled[0].Event.ColorID)
	}
	if out.RunID == "" {
		t.Error("expected a run id")
	}
}

func TestScheduleBatchPreservesSubmittedOrder(t *testing.T) {
	uc := usecase.NewWithClock(log.NewNoop(), fixedClock)

	input := scheduling.BatchScheduleInput{
		Tasks: []model.Task{
			batchTask("low-a", model.PriorityLow, 60),
			batchTask("high-b", model.PriorityHigh, 60),
		},
		Windows:     []model.AvailabilityWindow{freeWindow([2]int{9, 10})},
		Preferences: prefs(),
	}

	out, err := uc.ScheduleBatch(context.Background(), model.Scope{UserID: "user-1"}, input)
	if err != nil {
		t.Fatalf("ScheduleBatch: %v", err)
	}
	if len(out.Scheduled) != 1 || out.Scheduled[0].TaskID != "low-a" {
		t.Fatalf("without respectPriority the first submitted task keeps the slot, got %+v", out.Scheduled)
	}
}

func TestScheduleBatchAssignmentsNeverOverlap(t *testing.T) {
	uc := usecase.NewWithClock(log.NewNoop(), fixedClock)

	input := scheduling.BatchScheduleInput{
		Tasks: []model.Task{
			batchTask("t1", model.PriorityHigh, 60),
			batchTask("t2", model.PriorityMedium, 60),
			batchTask("t3", model.PriorityLow, 60),
		},
		Windows:         []model.AvailabilityWindow{freeWindow([2]int{9, 12})},
		Preferences:     prefs(),
		RespectPriority: true,
	}

	out, err := uc.ScheduleBatch(context.Background(), model.Scope{UserID: "user-1"}, input)
	if err != nil {
		t.Fatalf("ScheduleBatch: %v", err)
	}
	if len(out.Scheduled) != 3 {
		t.Fatalf("three 60-minute tasks fit a 3-hour window, scheduled %d", len(out.Scheduled))
	}
	for i := range out.Scheduled {
		for j := i + 1; j < len(out.Scheduled); j++ {
			if out.Scheduled[i].Slot.Overlaps(out.Scheduled[j].Slot) {
				t.Errorf("assignments %s and %s overlap", out.Scheduled[i].TaskID, out.Scheduled[j].TaskID)
			}
		}
	}

	if got := out.Summary.TotalMinutes; got != 180 {
		t.Errorf("summary total minutes = %d, want 180", got)
	}
	if out.Summary.ScheduledCount != 3 || out.Summary.UnschedulableCount != 0 || out.Summary.ConflictCount != 0 {
		t.Errorf("unexpected summary: %+v", out.Summary)
	}
}

func TestScheduleBatchDoesNotMutateInputWindows(t *testing.T) {
	uc := usecase.NewWithClock(log.NewNoop(), fixedClock)

	windows := []model.AvailabilityWindow{freeWindow([2]int{9, 11})}
	input := scheduling.BatchScheduleInput{
		Tasks:       []model.Task{batchTask("t1", model.PriorityHigh, 60)},
		Windows:     windows,
		Preferences: prefs(),
	}

	if _, err := uc.ScheduleBatch(context.Background(), model.Scope{UserID: "user-1"}, input); err != nil {
		t.Fatalf("ScheduleBatch: %v", err)
	}

	if windows[0].FreeMinutes != 120 {
		t.Errorf("caller's window shrank to %d free minutes, want 120", windows[0].FreeMinutes)
	}
	if len(windows[0].Slots) != 1 || !windows[0].Slots[0].Available {
		t.Errorf("caller's slots were rewritten: %+v", windows[0].Slots)
	}
}

func TestScheduleBatchRejectsInvalidInput(t *testing.T) {
	uc := usecase.NewWithClock(log.NewNoop(), fixedClock)

	_, err := uc.ScheduleBatch(context.Background(), model.Scope{}, scheduling.BatchScheduleInput{})
	if !errors.Is(err, scheduling.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}

	var verr *scheduling.ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("error must carry the validation result")
	}
	if len(verr.Result.Errors) == 0 {
		t.Error("expected individual validation messages")
	}
}

func TestValidateBatchSufficiency(t *testing.T) {
	uc := usecase.NewWithClock(log.NewNoop(), fixedClock)

	input := scheduling.BatchScheduleInput{
		Tasks: []model.Task{
			batchTask("t1", model.PriorityHigh, 60),
			batchTask("t2", model.PriorityMedium, 60),
		},
		Windows:     []model.AvailabilityWindow{freeWindow([2]int{9, 10})},
		Preferences: prefs(),
	}

	got, err := uc.ValidateBatch(context.Background(), model.Scope{UserID: "user-1"}, input)
	if err != nil {
		t.Fatalf("ValidateBatch: %v", err)
	}
	if !got.Valid {
		t.Errorf("input is well-formed, errors: %v", got.Errors)
	}
	if got.AvailableMinutes != 60 {
		t.Errorf("available = %d, want 60", got.AvailableMinutes)
	}
	if got.RequiredMinutes < 60 {
		t.Errorf("required = %d, want at least the rule defaults", got.RequiredMinutes)
	}
	if got.Sufficient {
		t.Error("two tasks cannot fit one hour; Sufficient must be false")
	}
}

func TestScheduleBatchUnschedulableWhenNothingFits(t *testing.T) {
	uc := usecase.NewWithClock(log.NewNoop(), fixedClock)

	input := scheduling.BatchScheduleInput{
		Tasks:       []model.Task{batchTask("big", model.PriorityHigh, 240)},
		Windows:     []model.AvailabilityWindow{freeWindow([2]int{9, 10})},
		Preferences: prefs(),
	}

	out, err := uc.ScheduleBatch(context.Background(), model.Scope{UserID: "user-1"}, input)
	if err != nil {
		t.Fatalf("ScheduleBatch: %v", err)
	}
	if len(out.Unschedulable) != 1 || out.Unschedulable[0].TaskID != "big" {
		t.Fatalf("expected the oversized task to be unschedulable, got %+v", out.Unschedulable)
	}
	if out.Unschedulable[0].Reason == "" {
		t.Error("expected a reason")
	}

	scheduled := false
	for _, a := range out.Scheduled {
		if a.TaskID == "big" {
			scheduled = true
		}
	}
	if scheduled {
		t.Error("oversized task must not be scheduled")
	}
}
