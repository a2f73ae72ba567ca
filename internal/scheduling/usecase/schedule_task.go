package usecase

import (
	"context"
	"sort"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/internal/scheduling/conflict"
	"smart-task-scheduler/internal/scheduling/protected"
	"smart-task-scheduler/internal/scheduling/rules"
	"smart-task-scheduler/internal/scheduling/scoring"
	"smart-task-scheduler/pkg/timeutil"
)

// ScheduleTask runs the single-task pipeline: generate candidates,
// filter by rules and protected time, score, annotate conflicts, rank.
// An empty result at any stage short-circuits to an empty list; no
// feasible slot is a valid outcome, not an error.
func (uc *implUseCase) ScheduleTask(ctx context.Context, sc model.Scope, input scheduling.ScheduleTaskInput) (scheduling.ScheduleTaskOutput, error) {
	if input.Task.ID == "" {
		return scheduling.ScheduleTaskOutput{}, scheduling.ErrMissingTaskID
	}

	maxSuggestions := input.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}

	suggestions := uc.suggest(input, maxSuggestions)
	uc.l.Infof(ctx, "ScheduleTask: user=%s task=%s suggestions=%d", sc.UserID, input.Task.ID, len(suggestions))

	return scheduling.ScheduleTaskOutput{Suggestions: suggestions}, nil
}

// suggest is the pure pipeline shared by single-task and batch
// scheduling. It never returns an error: infeasibility is an empty list.
func (uc *implUseCase) suggest(input scheduling.ScheduleTaskInput, maxSuggestions int) []scheduling.SchedulingSuggestion {
	rule := rules.EffectiveRule(input.Task, input.Rules)
	if rule.DefaultDuration <= 0 {
		rule.DefaultDuration = 30
	}

	candidates := generateCandidates(rule.DefaultDuration, rule.BufferBefore, rule.BufferAfter, input.Windows)
	if len(candidates) == 0 {
		return nil
	}

	candidates = filterByRule(candidates, rule)
	candidates = uc.filterProtected(candidates, input)
	if len(candidates) == 0 {
		return nil
	}

	timezone := input.Preferences.Timezone
	timeOfDay, _ := timeutil.ParseTimeOfDay(input.Task.ScheduledTime)

	suggestions := make([]scheduling.SchedulingSuggestion, 0, len(candidates))
	for _, c := range candidates {
		factors := scoring.Evaluate(scoring.Input{
			Task:      input.Task,
			Slot:      c.slot,
			Window:    c.window,
			Rule:      rule,
			TimeOfDay: timeOfDay,
			Timezone:  timezone,
		}, scoring.DefaultWeights())

		conflicts, displacements := conflict.Detect(c.slot, input.Task, input.Existing)

		suggestions = append(suggestions, scheduling.SchedulingSuggestion{
			Slot:          c.slot,
			Score:         scoring.TotalScore(factors),
			Factors:       factors,
			Reasoning:     scoring.Reasoning(factors),
			Conflicts:     conflicts,
			Displacements: displacements,
		})
	}

	// Stable sort keeps chronological order among equal scores, so
	// earlier slots win ties.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// filterByRule keeps candidates that pass at least a third of the rule
// checks; scoring penalizes imperfect matches instead of excluding them.
const rulePartialScoreThreshold = 33

func filterByRule(candidates []candidate, rule model.SchedulingRule) []candidate {
	kept := candidates[:0]
	for _, c := range candidates {
		if rules.SatisfiesRule(c.slot, rule).PartialScore >= rulePartialScoreThreshold {
			kept = append(kept, c)
		}
	}
	return kept
}

// filterProtected drops candidates overlapping protected time unless
// the task is urgent and the matched window allows urgent overrides.
func (uc *implUseCase) filterProtected(candidates []candidate, input scheduling.ScheduleTaskInput) []candidate {
	protectedSlots := protected.Effective(input.ProtectedSlots)
	now := uc.now()
	timezone := input.Preferences.Timezone

	kept := candidates[:0]
	for _, c := range candidates {
		res := protected.Check(c.slot, protectedSlots, timezone)
		if !res.Protected {
			kept = append(kept, c)
			continue
		}
		if protected.IsUrgent(input.Task, now) && protected.CanOverride(input.Task, *res.MatchedSlot, now) {
			kept = append(kept, c)
		}
	}
	return kept
}

// ScoreSlot scores one caller-supplied slot against the current
// context, for UI previews. The slot does not need to come from
// candidate generation.
func (uc *implUseCase) ScoreSlot(ctx context.Context, sc model.Scope, input scheduling.ScoreSlotInput) (scheduling.SchedulingSuggestion, error) {
	if input.Task.ID == "" {
		return scheduling.SchedulingSuggestion{}, scheduling.ErrMissingTaskID
	}

	rule := rules.EffectiveRule(input.Task, input.Rules)
	timeOfDay, _ := timeutil.ParseTimeOfDay(input.Task.ScheduledTime)

	window := windowForSlot(input.Windows, input.Slot)
	factors := scoring.Evaluate(scoring.Input{
		Task:      input.Task,
		Slot:      input.Slot,
		Window:    window,
		Rule:      rule,
		TimeOfDay: timeOfDay,
		Timezone:  input.Preferences.Timezone,
	}, scoring.DefaultWeights())

	suggestion := scheduling.SchedulingSuggestion{
		Slot:      input.Slot,
		Score:     scoring.TotalScore(factors),
		Factors:   factors,
		Reasoning: scoring.Reasoning(factors),
	}
	uc.l.Debugf(ctx, "ScoreSlot: user=%s task=%s score=%d", sc.UserID, input.Task.ID, suggestion.Score)
	return suggestion, nil
}

// CheckDisplacements lists existing bookings the task could bump from
// an arbitrary slot, including non-recommended entries.
func (uc *implUseCase) CheckDisplacements(ctx context.Context, sc model.Scope, input scheduling.CheckDisplacementsInput) ([]conflict.Displacement, error) {
	if input.Task.ID == "" {
		return nil, scheduling.ErrMissingTaskID
	}
	displacements := conflict.CheckDisplacements(input.Slot, input.Task, input.Existing)
	uc.l.Debugf(ctx, "CheckDisplacements: user=%s task=%s found=%d", sc.UserID, input.Task.ID, len(displacements))
	return displacements, nil
}

// windowForSlot finds the availability window covering the slot's day;
// a zero window degrades the block-dependent factors to their floor.
func windowForSlot(windows []model.AvailabilityWindow, slot model.TimeSlot) model.AvailabilityWindow {
	day := timeutil.StartOfDay(slot.Start)
	for _, w := range windows {
		if timeutil.StartOfDay(w.Date).Equal(day) {
			return w
		}
	}
	return model.AvailabilityWindow{Date: day}
}
