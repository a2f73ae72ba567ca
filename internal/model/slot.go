package model

import "time"

// TimeSlot is a half-open time interval [Start, End). When part of an
// AvailabilityWindow the Available flag marks it free or busy.
type TimeSlot struct {
	Start     time.Time
	End       time.Time
	Available bool
}

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints do not overlap.
func (s TimeSlot) Overlaps(o TimeSlot) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// Contains reports whether o lies entirely within s.
func (s TimeSlot) Contains(o TimeSlot) bool {
	return !o.Start.Before(s.Start) && !o.End.After(s.End)
}

// Duration returns the slot length.
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Minutes returns the slot length in whole minutes.
func (s TimeSlot) Minutes() int {
	return int(s.End.Sub(s.Start).Minutes())
}

// AvailabilityWindow is one calendar day's free/busy breakdown.
// Slots are non-overlapping and chronologically ordered; FreeMinutes
// and BusyMinutes equal the sum of the matching slot durations.
type AvailabilityWindow struct {
	Date        time.Time // midnight in the request timezone
	Slots       []TimeSlot
	FreeMinutes int
	BusyMinutes int
}

// FreeBlockContaining returns the free slot that fully contains s,
// or false when s is not inside any free block.
func (w AvailabilityWindow) FreeBlockContaining(s TimeSlot) (TimeSlot, bool) {
	for _, block := range w.Slots {
		if block.Available && block.Contains(s) {
			return block, true
		}
	}
	return TimeSlot{}, false
}
