package usecase

import (
	"fmt"
	"strings"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduling"
)

// Google Calendar color ids by priority: red, yellow, green.
var priorityColors = map[model.Priority]string{
	model.PriorityHigh:   "11",
	model.PriorityMedium: "5",
	model.PriorityLow:    "2",
}

// MetadataKeyOwner tags calendar events as managed by this system;
// MetadataKeyTaskID links the event back to its task.
const (
	MetadataKeyOwner  = "smartScheduler"
	MetadataKeyTaskID = "taskId"
)

// buildEventPayload describes the calendar event for a committed
// assignment. A collaborator materializes it; the engine never calls
// the calendar API itself.
func (uc *implUseCase) buildEventPayload(task model.Task, slot model.TimeSlot, prefs model.SchedulingPreferences) scheduling.EventPayload {
	title := task.Content
	if idx := strings.IndexByte(title, '\n'); idx >= 0 {
		title = title[:idx]
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Scheduled task"
	}

	color, ok := priorityColors[task.Priority]
	if !ok {
		color = priorityColors[model.PriorityMedium]
	}

	return scheduling.EventPayload{
		Title:       title,
		Description: fmt.Sprintf("Scheduled automatically for task %s (%s priority).", task.ID, task.Priority),
		Start:       slot.Start,
		End:         slot.End,
		Timezone:    prefs.Timezone,
		ColorID:     color,
		Reminders:   remindersFor(task.Priority),
		Metadata: map[string]string{
			MetadataKeyOwner:  "true",
			MetadataKeyTaskID: task.ID,
		},
	}
}

// remindersFor maps priority to a reminder policy: high gets an early
// heads-up plus a last-minute nudge, low just the early one.
func remindersFor(p model.Priority) []scheduling.ReminderOverride {
	switch p {
	case model.PriorityHigh:
		return []scheduling.ReminderOverride{
			{Method: "popup", Minutes: 60},
			{Method: "popup", Minutes: 10},
		}
	case model.PriorityLow:
		return []scheduling.ReminderOverride{
			{Method: "popup", Minutes: 60},
		}
	default:
		return []scheduling.ReminderOverride{
			{Method: "popup", Minutes: 30},
		}
	}
}
