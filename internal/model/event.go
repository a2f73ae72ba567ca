package model

import "time"

// ScheduledTask is an existing calendar booking, as reported by the
// calendar collaborator. Only the time range, ids and (optional)
// priority matter to the engine; it never needs the full Task record.
type ScheduledTask struct {
	ID              string
	TaskID          string
	Content         string
	Priority        Priority // empty = unknown (treated as medium)
	CalendarEventID string
	Start           time.Time
	End             time.Time
	Managed         bool // true when the event carries this system's private metadata
}

// Slot returns the booking's occupied time range.
func (s ScheduledTask) Slot() TimeSlot {
	return TimeSlot{Start: s.Start, End: s.End}
}

// EffectivePriority resolves an unknown booking priority to medium.
func (s ScheduledTask) EffectivePriority() Priority {
	if s.Priority.Valid() {
		return s.Priority
	}
	return PriorityMedium
}
