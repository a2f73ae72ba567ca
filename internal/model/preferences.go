package model

// SchedulingPreferences is the user's scheduling configuration,
// loaded by a collaborator and consumed read-only by the engine.
type SchedulingPreferences struct {
	UserID                 string
	WorkingHoursStart      string // "HH:mm"
	WorkingHoursEnd        string // "HH:mm"
	WorkingDays            []int  // 0=Sunday .. 6=Saturday
	Timezone               string // IANA name, e.g. "Asia/Ho_Chi_Minh"
	DefaultCalendarID      string
	AutoSchedule           bool
	PreferContiguousBlocks bool
}

// DefaultPreferences returns a 9-to-5 weekday baseline used when the
// user has not configured anything.
func DefaultPreferences(userID string) SchedulingPreferences {
	return SchedulingPreferences{
		UserID:            userID,
		WorkingHoursStart: "09:00",
		WorkingHoursEnd:   "17:00",
		WorkingDays:       []int{1, 2, 3, 4, 5},
		Timezone:          "UTC",
		DefaultCalendarID: "primary",
	}
}

// WorksOn reports whether the user works on the given weekday (0=Sunday).
func (p SchedulingPreferences) WorksOn(weekday int) bool {
	for _, d := range p.WorkingDays {
		if d == weekday {
			return true
		}
	}
	return false
}
