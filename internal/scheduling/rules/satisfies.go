package rules

import (
	"fmt"
	"math"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/pkg/timeutil"
)

// RuleCheck is the outcome of evaluating a slot against a rule.
// PartialScore is the rounded percentage of checks that passed, so an
// imperfect slot can still be ranked rather than discarded.
type RuleCheck struct {
	Satisfies    bool
	Violations   []string
	PartialScore int
}

// SatisfiesRule evaluates three independent checks: preferred
// day-of-week, preferred time range, and minimum duration. A rule
// without preferred days passes the day check unconditionally.
func SatisfiesRule(slot model.TimeSlot, rule model.SchedulingRule) RuleCheck {
	const total = 3
	passed := 0
	var violations []string

	if rule.AllowsDay(slot.Start.Weekday()) {
		passed++
	} else {
		violations = append(violations, fmt.Sprintf("%s is not a preferred day for %s tasks", slot.Start.Weekday(), rule.TaskType))
	}

	if withinPreferredRange(slot, rule) {
		passed++
	} else {
		violations = append(violations, fmt.Sprintf("slot falls outside preferred hours %s-%s", rule.PreferredStart, rule.PreferredEnd))
	}

	if slot.Minutes() >= rule.DefaultDuration {
		passed++
	} else {
		violations = append(violations, fmt.Sprintf("slot is shorter than the required %d minutes", rule.DefaultDuration))
	}

	return RuleCheck{
		Satisfies:    len(violations) == 0,
		Violations:   violations,
		PartialScore: int(math.Round(float64(passed) / float64(total) * 100)),
	}
}

// withinPreferredRange requires both the slot start and end to fall
// inside the rule's preferred clock range on the slot's day.
func withinPreferredRange(slot model.TimeSlot, rule model.SchedulingRule) bool {
	rangeStart := timeutil.ClockMinutes(rule.PreferredStart)
	rangeEnd := timeutil.ClockMinutes(rule.PreferredEnd)
	slotStart := timeutil.MinutesOfDay(slot.Start)
	slotEnd := slotStart + slot.Minutes()
	return slotStart >= rangeStart && slotEnd <= rangeEnd
}
