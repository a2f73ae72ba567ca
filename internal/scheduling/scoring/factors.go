package scoring

import (
	"fmt"
	"math"
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/pkg/timeutil"
)

// Factor is one weighted component of a slot score.
type Factor struct {
	Name        string `json:"name"`
	Weight      int    `json:"weight"`
	Value       int    `json:"value"` // 0-100
	Description string `json:"description"`
}

// Factor names.
const (
	FactorTaskType     = "taskTypePreference"
	FactorDueProximity = "dueDateProximity"
	FactorBuffer       = "bufferAvailability"
	FactorContiguous   = "contiguousTime"
	FactorPriority     = "priorityAlignment"
	FactorTimeOfDay    = "timeOfDay"
)

// Weights holds the per-factor weights. The defaults sum to 100.
type Weights struct {
	TaskType     int
	DueProximity int
	Buffer       int
	Contiguous   int
	Priority     int
	TimeOfDay    int
}

// DefaultWeights returns the standard factor weighting.
func DefaultWeights() Weights {
	return Weights{
		TaskType:     25,
		DueProximity: 20,
		Buffer:       15,
		Contiguous:   15,
		Priority:     15,
		TimeOfDay:    10,
	}
}

// Input carries everything needed to score one candidate slot.
type Input struct {
	Task      model.Task
	Slot      model.TimeSlot
	Window    model.AvailabilityWindow
	Rule      model.SchedulingRule // effective rule; zero value = no rule available
	TimeOfDay timeutil.TimeOfDay   // caller preference; empty = none
	Timezone  string
}

// Evaluate computes all six factors for a candidate slot.
func Evaluate(in Input, w Weights) []Factor {
	loc := timeutil.LoadLocation(in.Timezone)
	return []Factor{
		taskTypeFactor(in, w.TaskType),
		dueProximityFactor(in, w.DueProximity, loc),
		bufferFactor(in, w.Buffer),
		contiguousFactor(in, w.Contiguous),
		priorityFactor(in, w.Priority),
		timeOfDayFactor(in, w.TimeOfDay),
	}
}

// taskTypeFactor rewards slots matching the effective rule's preferred
// time range and days.
func taskTypeFactor(in Input, weight int) Factor {
	f := Factor{Name: FactorTaskType, Weight: weight}

	if in.Rule.TaskType == "" {
		f.Value = 50
		f.Description = "No task type preference available"
		return f
	}

	timeMatch := slotWithinClockRange(in.Slot, in.Rule.PreferredStart, in.Rule.PreferredEnd)
	dayMatch := in.Rule.AllowsDay(in.Slot.Start.Weekday())

	switch {
	case timeMatch && dayMatch:
		f.Value = 100
		f.Description = fmt.Sprintf("Ideal time for %s tasks", in.Rule.TaskType)
	case timeMatch:
		f.Value = 80
		f.Description = fmt.Sprintf("Preferred hours for %s tasks, though not a preferred day", in.Rule.TaskType)
	case dayMatch:
		f.Value = 60
		f.Description = fmt.Sprintf("Preferred day for %s tasks, though outside preferred hours", in.Rule.TaskType)
	default:
		f.Value = 30
		f.Description = fmt.Sprintf("Outside preferred time and days for %s tasks", in.Rule.TaskType)
	}
	return f
}

// dueProximityFactor scores how well the slot timing serves the due
// date, scaled by task priority.
func dueProximityFactor(in Input, weight int, loc *time.Location) Factor {
	f := Factor{Name: FactorDueProximity, Weight: weight}

	due := in.Task.DueAt(loc)
	if due == nil {
		switch in.Task.Priority {
		case model.PriorityHigh:
			f.Value = 60
		case model.PriorityLow:
			f.Value = 40
		default:
			f.Value = 50
		}
		f.Description = "No due date; scored by priority alone"
		return f
	}

	daysLeft := timeutil.DaysBetween(in.Slot.Start.In(loc), *due)
	if daysLeft < 0 {
		f.Value = 10
		f.Description = "Slot falls after the due date"
		return f
	}
	if daysLeft == 0 {
		f.Value = 95
		f.Description = "Scheduled on the due date"
		return f
	}

	var base float64
	switch {
	case daysLeft <= 1:
		base = 90
	case daysLeft <= 3:
		base = 80
	case daysLeft <= 7:
		base = 60
	default:
		base = 40
	}

	factor := 1.0
	switch in.Task.Priority {
	case model.PriorityHigh:
		factor = 1.2
	case model.PriorityLow:
		factor = 0.8
	}

	f.Value = int(math.Min(100, math.Round(base*factor)))
	f.Description = fmt.Sprintf("%d days before the due date", daysLeft)
	return f
}

// bufferFactor measures how much of the requested before/after buffer
// room exists inside the enclosing free block.
func bufferFactor(in Input, weight int) Factor {
	f := Factor{Name: FactorBuffer, Weight: weight}

	needBefore := in.Rule.BufferBefore
	needAfter := in.Rule.BufferAfter
	if needBefore <= 0 && needAfter <= 0 {
		f.Value = 100
		f.Description = "No buffer required"
		return f
	}

	block, ok := in.Window.FreeBlockContaining(in.Slot)
	if !ok {
		f.Value = 0
		f.Description = "Slot is not inside a free block"
		return f
	}

	roomBefore := int(in.Slot.Start.Sub(block.Start).Minutes())
	roomAfter := int(block.End.Sub(in.Slot.End).Minutes())

	pct := func(room, need int) float64 {
		if need <= 0 {
			return 100
		}
		return math.Min(100, float64(room)/float64(need)*100)
	}

	f.Value = int(math.Round((pct(roomBefore, needBefore) + pct(roomAfter, needAfter)) / 2))
	f.Description = fmt.Sprintf("%d/%d min buffer before, %d/%d after", roomBefore, needBefore, roomAfter, needAfter)
	return f
}

// contiguousFactor rewards slots inside generously sized free blocks.
func contiguousFactor(in Input, weight int) Factor {
	f := Factor{Name: FactorContiguous, Weight: weight}

	taskMin := in.Slot.Minutes()
	block, ok := in.Window.FreeBlockContaining(in.Slot)
	if !ok || taskMin <= 0 {
		f.Value = 0
		f.Description = "Slot is not inside a free block"
		return f
	}

	ratio := float64(block.Minutes()) / float64(taskMin)
	switch {
	case ratio >= 3:
		f.Value = 100
		f.Description = "Large contiguous block with plenty of room"
	case ratio >= 2:
		f.Value = 85
		f.Description = "Contiguous block with comfortable room"
	case ratio >= 1.5:
		f.Value = 70
		f.Description = "Contiguous block with some room to spare"
	case ratio >= 1:
		f.Value = 50
		f.Description = "Block fits the task exactly"
	default:
		f.Value = 0
		f.Description = "Block is too small for the task"
	}
	return f
}

// priorityFactor aligns task priority with time of day: high priority
// belongs in prime focus hours, low priority should stay out of them.
func priorityFactor(in Input, weight int) Factor {
	f := Factor{Name: FactorPriority, Weight: weight}

	startMin := timeutil.MinutesOfDay(in.Slot.Start)
	prime := startMin >= 9*60 && startMin < 12*60
	extended := startMin >= 8*60 && startMin < 14*60

	switch in.Task.Priority {
	case model.PriorityHigh:
		switch {
		case prime:
			f.Value = 100
			f.Description = "High-priority task in prime morning hours"
		case extended:
			f.Value = 70
			f.Description = "High-priority task in good working hours"
		default:
			f.Value = 40
			f.Description = "High-priority task outside prime hours"
		}
	case model.PriorityLow:
		if prime {
			f.Value = 50
			f.Description = "Low-priority task would occupy prime hours"
		} else {
			f.Value = 80
			f.Description = "Low-priority task keeps prime hours free"
		}
	default:
		f.Value = 70
		f.Description = "Medium-priority task fits any time"
	}
	return f
}

// timeOfDayFactor scores against the caller's morning/afternoon/evening
// preference, with partial credit for adjacent periods.
func timeOfDayFactor(in Input, weight int) Factor {
	f := Factor{Name: FactorTimeOfDay, Weight: weight}

	if in.TimeOfDay == "" {
		f.Value = 70
		f.Description = "No time-of-day preference"
		return f
	}

	slotCategory := timeutil.Category(in.Slot.Start)
	switch {
	case slotCategory == in.TimeOfDay:
		f.Value = 100
		f.Description = fmt.Sprintf("Matches preferred %s scheduling", in.TimeOfDay)
	case timeutil.Adjacent(in.TimeOfDay, slotCategory):
		f.Value = 60
		f.Description = fmt.Sprintf("Close to preferred %s scheduling", in.TimeOfDay)
	default:
		f.Value = 30
		f.Description = fmt.Sprintf("Far from preferred %s scheduling", in.TimeOfDay)
	}
	return f
}

func slotWithinClockRange(slot model.TimeSlot, startClock, endClock string) bool {
	rangeStart := timeutil.ClockMinutes(startClock)
	rangeEnd := timeutil.ClockMinutes(endClock)
	slotStart := timeutil.MinutesOfDay(slot.Start)
	slotEnd := slotStart + slot.Minutes()
	return slotStart >= rangeStart && slotEnd <= rangeEnd
}
