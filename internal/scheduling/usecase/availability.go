package usecase

import (
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/pkg/timeutil"
)

// cloneWindows deep-copies availability windows so batch allocation can
// shrink its own copy without touching the caller's snapshot.
func cloneWindows(windows []model.AvailabilityWindow) []model.AvailabilityWindow {
	out := make([]model.AvailabilityWindow, len(windows))
	for i, w := range windows {
		out[i] = w
		out[i].Slots = make([]model.TimeSlot, len(w.Slots))
		copy(out[i].Slots, w.Slots)
	}
	return out
}

// consumeSlot marks the given range busy inside its window, splitting
// the containing free block into up to two remaining free pieces.
// Free-minute totals shrink by the consumed duration, never below zero.
func consumeSlot(windows []model.AvailabilityWindow, consumed model.TimeSlot) []model.AvailabilityWindow {
	day := timeutil.StartOfDay(consumed.Start)

	for wi := range windows {
		w := &windows[wi]
		if !timeutil.StartOfDay(w.Date).Equal(day) {
			continue
		}

		var rebuilt []model.TimeSlot
		for _, block := range w.Slots {
			if !block.Available || !block.Overlaps(consumed) {
				rebuilt = append(rebuilt, block)
				continue
			}

			if block.Start.Before(consumed.Start) {
				rebuilt = append(rebuilt, model.TimeSlot{
					Start: block.Start, End: consumed.Start, Available: true,
				})
			}
			rebuilt = append(rebuilt, model.TimeSlot{
				Start: maxTime(block.Start, consumed.Start),
				End:   minTime(block.End, consumed.End),
			})
			if block.End.After(consumed.End) {
				rebuilt = append(rebuilt, model.TimeSlot{
					Start: consumed.End, End: block.End, Available: true,
				})
			}
		}
		w.Slots = rebuilt

		minutes := consumed.Minutes()
		if minutes > w.FreeMinutes {
			minutes = w.FreeMinutes
		}
		w.FreeMinutes -= minutes
		w.BusyMinutes += minutes
		break
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
