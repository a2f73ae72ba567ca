package model

import "time"

// SchedulingRule is a per-task-type scheduling policy. Zero-valued
// fields on a user rule mean "not specified" and fall through to the
// built-in default during the merge.
type SchedulingRule struct {
	ID              string
	UserID          string
	TaskType        TaskType
	PreferredStart  string // "HH:mm"
	PreferredEnd    string // "HH:mm"
	PreferredDays   []int  // 0=Sunday .. 6=Saturday; empty = no day restriction
	DefaultDuration int    // minutes
	BufferBefore    int    // minutes
	BufferAfter     int    // minutes
	Enabled         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AllowsDay reports whether the rule permits scheduling on the given weekday.
// A rule without preferred days allows every day.
func (r SchedulingRule) AllowsDay(weekday time.Weekday) bool {
	if len(r.PreferredDays) == 0 {
		return true
	}
	for _, d := range r.PreferredDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

// ProtectedSlot is a named recurring "do not schedule" window.
type ProtectedSlot struct {
	ID                     string
	UserID                 string
	Name                   string
	Days                   []int  // 0=Sunday .. 6=Saturday
	StartTime              string // "HH:mm"
	EndTime                string // "HH:mm"
	AllowOverrideForUrgent bool
	Enabled                bool
}

// RecursOn reports whether the protected slot recurs on the given weekday.
func (p ProtectedSlot) RecursOn(weekday time.Weekday) bool {
	for _, d := range p.Days {
		if d == int(weekday) {
			return true
		}
	}
	return false
}
