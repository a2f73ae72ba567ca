package availability

import (
	"sort"
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/pkg/timeutil"
)

// BusyInterval is an occupied span on the user's calendar.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// BuildWindows derives per-day availability from working preferences and
// the busy intervals reported by the calendar. Each returned window
// covers one working day; free slots are the working hours minus busy
// time, and FreeMinutes+BusyMinutes always equals the working span.
func BuildWindows(from, to time.Time, prefs model.SchedulingPreferences, busy []BusyInterval) []model.AvailabilityWindow {
	loc := timeutil.LoadLocation(prefs.Timezone)
	startClock := timeutil.ClockMinutes(prefs.WorkingHoursStart)
	endClock := timeutil.ClockMinutes(prefs.WorkingHoursEnd)
	if endClock <= startClock {
		return nil
	}

	sorted := make([]BusyInterval, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	var windows []model.AvailabilityWindow
	for d := timeutil.StartOfDay(from.In(loc)); !d.After(to.In(loc)); d = d.AddDate(0, 0, 1) {
		if !prefs.WorksOn(int(d.Weekday())) {
			continue
		}

		dayStart := d.Add(time.Duration(startClock) * time.Minute)
		dayEnd := d.Add(time.Duration(endClock) * time.Minute)

		w := model.AvailabilityWindow{Date: d}
		cursor := dayStart
		for _, b := range sorted {
			if !b.End.After(dayStart) || !b.Start.Before(dayEnd) {
				continue
			}
			bStart := maxTime(b.Start, dayStart)
			bEnd := minTime(b.End, dayEnd)
			if bStart.After(cursor) {
				w.Slots = append(w.Slots, model.TimeSlot{Start: cursor, End: bStart, Available: true})
			}
			if bEnd.After(cursor) {
				cursor = bEnd
			}
		}
		if cursor.Before(dayEnd) {
			w.Slots = append(w.Slots, model.TimeSlot{Start: cursor, End: dayEnd, Available: true})
		}

		for _, s := range w.Slots {
			w.FreeMinutes += s.Minutes()
		}
		w.BusyMinutes = int(dayEnd.Sub(dayStart).Minutes()) - w.FreeMinutes

		windows = append(windows, w)
	}
	return windows
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
