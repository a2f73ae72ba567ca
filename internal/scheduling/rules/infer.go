package rules

import (
	"strings"

	"smart-task-scheduler/internal/model"
)

// keywordSet binds a task type to the content keywords that imply it.
type keywordSet struct {
	taskType model.TaskType
	keywords []string
}

// inferenceOrder is checked first-match-wins, so the more specific
// categories come before the broader ones.
var inferenceOrder = []keywordSet{
	{model.TaskTypeCall, []string{"call", "phone", "ring", "dial"}},
	{model.TaskTypeMeeting, []string{"meeting", "meet with", "sync", "standup", "stand-up", "1:1", "one-on-one", "interview", "demo"}},
	{model.TaskTypeCoding, []string{"code", "coding", "implement", "debug", "refactor", "bugfix", "fix bug", "deploy", "pull request", "merge"}},
	{model.TaskTypeDeepWork, []string{"write", "design", "research", "analyze", "study", "draft", "architecture", "deep work", "focus"}},
	{model.TaskTypeAdmin, []string{"email", "invoice", "expense", "report", "paperwork", "form", "organize", "file taxes", "admin"}},
	{model.TaskTypeHealth, []string{"gym", "workout", "exercise", "doctor", "dentist", "yoga", "therapy", "checkup"}},
	{model.TaskTypePersonal, []string{"family", "birthday", "shopping", "groceries", "dinner", "errand", "clean", "laundry"}},
}

// InferTaskType guesses a task type from free-text content. It is a
// deterministic keyword fallback used only when the task carries no
// explicit type; anything unrecognized becomes "other".
func InferTaskType(content string) model.TaskType {
	lowered := strings.ToLower(content)
	for _, set := range inferenceOrder {
		for _, kw := range set.keywords {
			if strings.Contains(lowered, kw) {
				return set.taskType
			}
		}
	}
	return model.TaskTypeOther
}

// ResolveTaskType returns the task's explicit type, or infers one from
// its content when unset.
func ResolveTaskType(t model.Task) model.TaskType {
	if t.TaskType != "" {
		return t.TaskType
	}
	return InferTaskType(t.Content)
}
