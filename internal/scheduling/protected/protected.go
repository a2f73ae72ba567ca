package protected

import (
	"fmt"
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/pkg/timeutil"
)

// CheckResult reports whether a slot overlaps a protected window.
// CanOverride reflects the matched window's override flag only; whether
// a given task may actually use it is decided by CanOverride().
type CheckResult struct {
	Protected   bool
	MatchedSlot *model.ProtectedSlot
	CanOverride bool
	Reason      string
}

// Check tests a candidate slot against the user's protected windows.
// The first enabled window that overlaps wins; overlapping protections
// are not aggregated.
func Check(slot model.TimeSlot, protectedSlots []model.ProtectedSlot, timezone string) CheckResult {
	loc := timeutil.LoadLocation(timezone)
	localStart := slot.Start.In(loc)

	for i := range protectedSlots {
		p := protectedSlots[i]
		if !p.Enabled {
			continue
		}
		if !p.RecursOn(localStart.Weekday()) {
			continue
		}

		window := model.TimeSlot{
			Start: timeutil.AtClock(localStart, p.StartTime),
			End:   timeutil.AtClock(localStart, p.EndTime),
		}
		if slot.Overlaps(window) {
			return CheckResult{
				Protected:   true,
				MatchedSlot: &protectedSlots[i],
				CanOverride: p.AllowOverrideForUrgent,
				Reason:      fmt.Sprintf("overlaps protected time %q (%s-%s)", p.Name, p.StartTime, p.EndTime),
			}
		}
	}

	return CheckResult{}
}

// CanOverride reports whether the task may be scheduled into the given
// protected window. A due date within the next 24 hours is a sufficient
// fast-path; otherwise the task must be high priority and the window
// must allow urgent overrides.
func CanOverride(t model.Task, p model.ProtectedSlot, now time.Time) bool {
	if !p.AllowOverrideForUrgent {
		return false
	}
	if dueWithin24h(t, now) {
		return true
	}
	return t.Priority == model.PriorityHigh
}

// IsUrgent reports whether the task is high priority or due within the
// next 24 hours. Overdue tasks do not count as urgent here.
func IsUrgent(t model.Task, now time.Time) bool {
	if t.Priority == model.PriorityHigh {
		return true
	}
	return dueWithin24h(t, now)
}

func dueWithin24h(t model.Task, now time.Time) bool {
	due := t.DueAt(now.Location())
	if due == nil {
		return false
	}
	until := due.Sub(now)
	return until > 0 && until <= 24*time.Hour
}

// Instance is a protected window expanded to a concrete date.
type Instance struct {
	Slot  model.ProtectedSlot
	Start time.Time
	End   time.Time
}

// Expand materializes every enabled protected slot over [from, to]
// inclusive, one instance per matching calendar day.
func Expand(protectedSlots []model.ProtectedSlot, from, to time.Time, timezone string) []Instance {
	loc := timeutil.LoadLocation(timezone)
	var instances []Instance

	for day := timeutil.StartOfDay(from.In(loc)); !day.After(to.In(loc)); day = day.AddDate(0, 0, 1) {
		for _, p := range protectedSlots {
			if !p.Enabled || !p.RecursOn(day.Weekday()) {
				continue
			}
			instances = append(instances, Instance{
				Slot:  p,
				Start: timeutil.AtClock(day, p.StartTime),
				End:   timeutil.AtClock(day, p.EndTime),
			})
		}
	}

	return instances
}

// Defaults returns the built-in protected windows, used only when the
// user has configured none: an afternoon ad-hoc-calls block that urgent
// tasks may override, and a hard lunch block.
func Defaults() []model.ProtectedSlot {
	return []model.ProtectedSlot{
		{
			ID:                     "default-adhoc-calls",
			Name:                   "Ad-hoc calls",
			Days:                   []int{1, 2, 3, 4, 5},
			StartTime:              "15:00",
			EndTime:                "16:00",
			AllowOverrideForUrgent: true,
			Enabled:                true,
		},
		{
			ID:        "default-lunch",
			Name:      "Lunch",
			Days:      []int{1, 2, 3, 4, 5},
			StartTime: "12:00",
			EndTime:   "13:00",
			Enabled:   true,
		},
	}
}

// Effective returns the user's protected slots, or the defaults when
// none are configured.
func Effective(userSlots []model.ProtectedSlot) []model.ProtectedSlot {
	if len(userSlots) > 0 {
		return userSlots
	}
	return Defaults()
}
