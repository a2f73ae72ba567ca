package model

import (
	"time"

	"smart-task-scheduler/pkg/timeutil"
)

// Priority is the user-assigned importance of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight maps a priority to its numeric ordering value.
// Unknown priorities weigh 0 and lose every comparison.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// TaskType categorizes a task for per-type scheduling rules.
type TaskType string

const (
	TaskTypeDeepWork TaskType = "deep_work"
	TaskTypeCoding   TaskType = "coding"
	TaskTypeCall     TaskType = "call"
	TaskTypeMeeting  TaskType = "meeting"
	TaskTypePersonal TaskType = "personal"
	TaskTypeAdmin    TaskType = "admin"
	TaskTypeHealth   TaskType = "health"
	TaskTypeOther    TaskType = "other"
)

// Task is a unit of work the engine schedules. The engine never mutates
// a Task; it only produces scheduling decisions about it.
type Task struct {
	ID            string
	Content       string
	Priority      Priority
	TaskType      TaskType   // empty means unknown, inferred from Content
	DueDate       *time.Time // day the task is due (nil = no deadline)
	DueTime       string     // optional "HH:mm" on the due date
	TimeEstimate  *int       // minutes; nil falls back to the rule default
	BufferBefore  *int       // minutes; nil falls back to the rule default
	BufferAfter   *int       // minutes; nil falls back to the rule default
	ScheduledTime string     // optional preference: "morning", "afternoon", "evening"
	Completed     bool
	Archived      bool
	UserID        string
	CreatedAt     time.Time
}

// DueAt combines DueDate and DueTime into a single instant in loc.
// Returns nil when the task has no due date. A missing DueTime
// resolves to end of the due day.
func (t Task) DueAt(loc *time.Location) *time.Time {
	if t.DueDate == nil {
		return nil
	}
	d := t.DueDate.In(loc)
	h, m := 23, 59
	if t.DueTime != "" {
		h, m = timeutil.ParseClock(t.DueTime)
	}
	due := time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, loc)
	return &due
}
