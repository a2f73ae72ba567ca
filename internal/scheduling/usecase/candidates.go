package usecase

import (
	"sort"
	"time"

	"smart-task-scheduler/internal/model"
)

// candidateStepMinutes is the cursor increment during candidate
// generation.
const candidateStepMinutes = 15

// candidate is one potential placement, paired with the availability
// window it came from so scoring can inspect the enclosing free block.
type candidate struct {
	slot   model.TimeSlot
	window model.AvailabilityWindow
}

// generateCandidates slides a start cursor through every free sub-slot
// large enough to hold duration plus both buffers, emitting one
// candidate per 15-minute position. Candidates come out in
// chronological order.
func generateCandidates(durationMin, bufferBefore, bufferAfter int, windows []model.AvailabilityWindow) []candidate {
	span := durationMin + bufferBefore + bufferAfter
	duration := time.Duration(durationMin) * time.Minute
	step := candidateStepMinutes * time.Minute

	ordered := make([]model.AvailabilityWindow, len(windows))
	copy(ordered, windows)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	var candidates []candidate
	for _, w := range ordered {
		for _, sub := range w.Slots {
			if !sub.Available || sub.Minutes() < span {
				continue
			}
			cursor := sub.Start.Add(time.Duration(bufferBefore) * time.Minute)
			for {
				end := cursor.Add(duration)
				if end.Add(time.Duration(bufferAfter) * time.Minute).After(sub.End) {
					break
				}
				candidates = append(candidates, candidate{
					slot:   model.TimeSlot{Start: cursor, End: end},
					window: w,
				})
				cursor = cursor.Add(step)
			}
		}
	}
	return candidates
}
