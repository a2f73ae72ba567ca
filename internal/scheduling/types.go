package scheduling

import (
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduling/conflict"
	"smart-task-scheduler/internal/scheduling/scoring"
)

// ScheduleTaskInput is the input for single-task slot suggestion.
// The caller supplies a consistent snapshot of availability and
// existing bookings; the engine performs no I/O of its own.
type ScheduleTaskInput struct {
	Task           model.Task
	Windows        []model.AvailabilityWindow
	Rules          []model.SchedulingRule
	ProtectedSlots []model.ProtectedSlot
	Existing       []model.ScheduledTask
	Preferences    model.SchedulingPreferences
	MaxSuggestions int // 0 means the default of 5
}

// SchedulingSuggestion is one ranked candidate slot.
type SchedulingSuggestion struct {
	Slot          model.TimeSlot          `json:"slot"`
	Score         int                     `json:"score"`
	Factors       []scoring.Factor        `json:"factors"`
	Reasoning     string                  `json:"reasoning"`
	Conflicts     []conflict.Conflict     `json:"conflicts,omitempty"`
	Displacements []conflict.Displacement `json:"displacements,omitempty"`
}

// ScheduleTaskOutput is the ranked suggestion list for one task.
type ScheduleTaskOutput struct {
	Suggestions []SchedulingSuggestion
}

// BatchScheduleInput is the input for multi-task allocation.
type BatchScheduleInput struct {
	Tasks           []model.Task
	Windows         []model.AvailabilityWindow
	Rules           []model.SchedulingRule
	ProtectedSlots  []model.ProtectedSlot
	Existing        []model.ScheduledTask
	Preferences     model.SchedulingPreferences
	RespectPriority bool
}

// ScheduledAssignment is one committed task-to-slot allocation.
type ScheduledAssignment struct {
	TaskID    string         `json:"taskId"`
	Content   string         `json:"content"`
	Slot      model.TimeSlot `json:"slot"`
	Score     int            `json:"score"`
	Reasoning string         `json:"reasoning"`
	Event     EventPayload   `json:"event"`
}

// BatchConflict records a task whose every suggestion collided with
// slots already assigned earlier in the same batch run.
type BatchConflict struct {
	TaskID             string   `json:"taskId"`
	ConflictingTaskIDs []string `json:"conflictingTaskIds"`
	Reason             string   `json:"reason"`
}

// UnschedulableTask records a task no slot could fit.
type UnschedulableTask struct {
	TaskID string `json:"taskId"`
	Reason string `json:"reason"`
}

// BatchSummary aggregates a finished batch run.
type BatchSummary struct {
	ScheduledCount     int `json:"scheduledCount"`
	ConflictCount      int `json:"conflictCount"`
	UnschedulableCount int `json:"unschedulableCount"`
	TotalMinutes       int `json:"totalMinutesScheduled"`
}

// BatchScheduleOutput partitions a batch run's results.
type BatchScheduleOutput struct {
	RunID         string                `json:"runId"`
	Scheduled     []ScheduledAssignment `json:"scheduled"`
	Conflicts     []BatchConflict       `json:"conflicts"`
	Unschedulable []UnschedulableTask   `json:"unschedulable"`
	Summary       BatchSummary          `json:"summary"`
}

// ScoreSlotInput scores one caller-chosen slot (UI preview).
type ScoreSlotInput struct {
	Task        model.Task
	Slot        model.TimeSlot
	Windows     []model.AvailabilityWindow
	Rules       []model.SchedulingRule
	Preferences model.SchedulingPreferences
}

// CheckDisplacementsInput asks what a task could bump from a slot.
type CheckDisplacementsInput struct {
	Task     model.Task
	Slot     model.TimeSlot
	Existing []model.ScheduledTask
}

// ValidationResult is the batch pre-flight outcome. Errors are
// human-readable; the engine does not proceed past a failed validation.
type ValidationResult struct {
	Valid            bool     `json:"valid"`
	Errors           []string `json:"errors,omitempty"`
	RequiredMinutes  int      `json:"requiredMinutes"`
	AvailableMinutes int      `json:"availableMinutes"`
	Sufficient       bool     `json:"sufficient"`
}

// ReminderOverride is one reminder in an event payload.
type ReminderOverride struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

// EventPayload describes the calendar event a collaborator should
// materialize for a committed assignment. The engine decides what the
// event looks like; it never performs the booking call.
type EventPayload struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Start       time.Time          `json:"start"`
	End         time.Time          `json:"end"`
	Timezone    string             `json:"timezone"`
	ColorID     string             `json:"colorId"`
	Reminders   []ReminderOverride `json:"reminders"`
	Metadata    map[string]string  `json:"metadata"`
}
