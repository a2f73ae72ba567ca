package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// ParseClock parses an "HH:mm" string into hour and minute components.
// It never fails: unparseable components are treated as 0.
func ParseClock(s string) (hour, minute int) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) > 0 {
		if h, err := strconv.Atoi(parts[0]); err == nil {
			hour = h
		}
	}
	if len(parts) > 1 {
		if m, err := strconv.Atoi(parts[1]); err == nil {
			minute = m
		}
	}
	return hour, minute
}

// ClockMinutes converts an "HH:mm" string to minutes since midnight.
func ClockMinutes(s string) int {
	h, m := ParseClock(s)
	return h*60 + m
}

// MinutesOfDay returns t's minutes since local midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// AtClock returns the instant on day's calendar date at the given
// "HH:mm" clock time, in day's location.
func AtClock(day time.Time, clock string) time.Time {
	h, m := ParseClock(clock)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}

// StartOfDay returns midnight of t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole-day difference to - from, comparing
// calendar dates (time-of-day is ignored).
func DaysBetween(from, to time.Time) int {
	f := StartOfDay(from)
	t := StartOfDay(to.In(from.Location()))
	return int(t.Sub(f).Hours() / 24)
}

// LoadLocation resolves an IANA timezone name, falling back to UTC
// for empty or unknown names.
func LoadLocation(timezone string) *time.Location {
	if timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TimeOfDay buckets a clock time into a coarse category.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"   // before 12:00
	Afternoon TimeOfDay = "afternoon" // 12:00 - 16:59
	Evening   TimeOfDay = "evening"   // 17:00 onward
)

// Category returns the time-of-day bucket for t.
func Category(t time.Time) TimeOfDay {
	switch {
	case t.Hour() < 12:
		return Morning
	case t.Hour() < 17:
		return Afternoon
	default:
		return Evening
	}
}

// ParseTimeOfDay validates a user-supplied time-of-day preference.
// Returns false for anything that is not morning/afternoon/evening.
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	switch TimeOfDay(strings.ToLower(strings.TrimSpace(s))) {
	case Morning:
		return Morning, true
	case Afternoon:
		return Afternoon, true
	case Evening:
		return Evening, true
	default:
		return "", false
	}
}

// Adjacent reports whether two time-of-day categories neighbor each
// other (morning↔afternoon, afternoon↔evening).
func Adjacent(a, b TimeOfDay) bool {
	switch a {
	case Morning:
		return b == Afternoon
	case Afternoon:
		return b == Morning || b == Evening
	case Evening:
		return b == Afternoon
	default:
		return false
	}
}
