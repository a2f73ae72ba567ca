package rules

import (
	"time"

	"github.com/google/uuid"

	"smart-task-scheduler/internal/model"
)

// EffectiveRule merges the built-in default for the task's type with a
// matching enabled user rule and the task's own overrides.
// Precedence: task-level > user rule > default, field by field.
// Zero-valued user rule fields fall through to the default.
func EffectiveRule(t model.Task, userRules []model.SchedulingRule) model.SchedulingRule {
	taskType := ResolveTaskType(t)
	merged := DefaultRule(taskType)
	merged.TaskType = taskType

	userRule, found := findUserRule(taskType, userRules)
	if found {
		merged.ID = userRule.ID
		merged.UserID = userRule.UserID
		merged.CreatedAt = userRule.CreatedAt
		merged.UpdatedAt = userRule.UpdatedAt
		if userRule.PreferredStart != "" {
			merged.PreferredStart = userRule.PreferredStart
		}
		if userRule.PreferredEnd != "" {
			merged.PreferredEnd = userRule.PreferredEnd
		}
		if len(userRule.PreferredDays) > 0 {
			merged.PreferredDays = userRule.PreferredDays
		}
		if userRule.DefaultDuration > 0 {
			merged.DefaultDuration = userRule.DefaultDuration
		}
		if userRule.BufferBefore > 0 {
			merged.BufferBefore = userRule.BufferBefore
		}
		if userRule.BufferAfter > 0 {
			merged.BufferAfter = userRule.BufferAfter
		}
	} else {
		// Synthesize identity for a rule that exists only in memory.
		now := time.Now()
		merged.ID = "default-" + uuid.NewString()
		merged.UserID = t.UserID
		merged.CreatedAt = now
		merged.UpdatedAt = now
	}
	merged.Enabled = true

	// Task-level explicit values always win.
	if t.TimeEstimate != nil {
		merged.DefaultDuration = *t.TimeEstimate
	}
	if t.BufferBefore != nil {
		merged.BufferBefore = *t.BufferBefore
	}
	if t.BufferAfter != nil {
		merged.BufferAfter = *t.BufferAfter
	}

	return merged
}

func findUserRule(taskType model.TaskType, userRules []model.SchedulingRule) (model.SchedulingRule, bool) {
	for _, r := range userRules {
		if r.Enabled && r.TaskType == taskType {
			return r, true
		}
	}
	return model.SchedulingRule{}, false
}
