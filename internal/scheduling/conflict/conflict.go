package conflict

import (
	"fmt"

	"smart-task-scheduler/internal/model"
)

// Type classifies a scheduling conflict.
type Type string

const (
	TypeOverlap       Type = "overlap"
	TypeBuffer        Type = "buffer"
	TypeRuleViolation Type = "rule_violation"
	TypeProtected     Type = "protected_slot"
	TypeOutsideHours  Type = "outside_hours"
)

// Severity grades how blocking a conflict is.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Conflict describes why a candidate slot collides with something.
type Conflict struct {
	Type        Type     `json:"type"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Resolution  string   `json:"resolution,omitempty"`
	EventID     string   `json:"eventId,omitempty"`
}

// Displacement is an existing managed booking that a higher-priority
// task could bump out of its slot.
type Displacement struct {
	ExistingID       string         `json:"existingId"`
	ExistingTaskID   string         `json:"existingTaskId"`
	ExistingContent  string         `json:"existingContent"`
	ExistingPriority model.Priority `json:"existingPriority"`
	NewPriority      model.Priority `json:"newPriority"`
	Recommended      bool           `json:"recommended"`
	Reason           string         `json:"reason"`
}

// ComparePriorities returns >0 when a outranks b, 0 on equal rank.
func ComparePriorities(a, b model.Priority) int {
	return a.Weight() - b.Weight()
}

// CanDisplace reports whether a new task strictly outranks an existing
// booking. Equal priority never displaces.
func CanDisplace(newPriority, existingPriority model.Priority) bool {
	return ComparePriorities(newPriority, existingPriority) > 0
}

// Detect classifies every existing booking that overlaps the candidate
// slot. Managed bookings of strictly lower priority become displacement
// candidates; everything else is a hard conflict.
func Detect(slot model.TimeSlot, task model.Task, existing []model.ScheduledTask) ([]Conflict, []Displacement) {
	var conflicts []Conflict
	var displacements []Displacement

	for _, booking := range existing {
		if !slot.Overlaps(booking.Slot()) {
			continue
		}

		if booking.Managed && CanDisplace(task.Priority, booking.EffectivePriority()) {
			displacements = append(displacements, Displacement{
				ExistingID:       booking.ID,
				ExistingTaskID:   booking.TaskID,
				ExistingContent:  booking.Content,
				ExistingPriority: booking.EffectivePriority(),
				NewPriority:      task.Priority,
				Recommended:      true,
				Reason: fmt.Sprintf("%s-priority task outranks existing %s-priority booking",
					task.Priority, booking.EffectivePriority()),
			})
			continue
		}

		c := Conflict{
			Type:        TypeOverlap,
			Description: fmt.Sprintf("overlaps existing booking %q", booking.Content),
			Severity:    SeverityError,
			EventID:     booking.ID,
		}
		if booking.Managed {
			c.Resolution = "existing booking has equal or higher priority; pick another slot"
		} else {
			c.Resolution = "event is not managed by the scheduler; pick another slot"
		}
		conflicts = append(conflicts, c)
	}

	return conflicts, displacements
}

// CheckDisplacements lists every managed booking overlapping the slot
// as a displacement candidate, recommended only when the new task
// strictly outranks it. Used for standalone displacement queries where
// the caller wants the non-recommended entries too.
func CheckDisplacements(slot model.TimeSlot, task model.Task, existing []model.ScheduledTask) []Displacement {
	var displacements []Displacement
	for _, booking := range existing {
		if !booking.Managed || !slot.Overlaps(booking.Slot()) {
			continue
		}
		recommended := CanDisplace(task.Priority, booking.EffectivePriority())
		reason := fmt.Sprintf("existing %s-priority booking cannot be displaced by a %s-priority task",
			booking.EffectivePriority(), task.Priority)
		if recommended {
			reason = fmt.Sprintf("%s-priority task outranks existing %s-priority booking",
				task.Priority, booking.EffectivePriority())
		}
		displacements = append(displacements, Displacement{
			ExistingID:       booking.ID,
			ExistingTaskID:   booking.TaskID,
			ExistingContent:  booking.Content,
			ExistingPriority: booking.EffectivePriority(),
			NewPriority:      task.Priority,
			Recommended:      recommended,
			Reason:           reason,
		})
	}
	return displacements
}

// Annotated pairs a candidate slot with its detected conflicts, in the
// caller's preference order.
type Annotated struct {
	Slot          model.TimeSlot
	Conflicts     []Conflict
	Displacements []Displacement
}

// FindBestSlot returns the index of the first fully conflict-free
// candidate; failing that, the first candidate whose every overlap is
// displaceable (no hard conflicts remain). Returns false when no
// candidate is usable.
func FindBestSlot(candidates []Annotated) (int, bool) {
	for i, c := range candidates {
		if len(c.Conflicts) == 0 && len(c.Displacements) == 0 {
			return i, true
		}
	}
	for i, c := range candidates {
		if len(c.Conflicts) == 0 && len(c.Displacements) > 0 {
			return i, true
		}
	}
	return 0, false
}
