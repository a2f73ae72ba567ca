package rules

import "smart-task-scheduler/internal/model"

// weekdays is Monday through Friday (0=Sunday convention).
var weekdays = []int{1, 2, 3, 4, 5}

// defaultTable holds the built-in per-type scheduling policy, used when
// the user has not configured a rule for the type. An empty PreferredDays
// means no day restriction.
var defaultTable = map[model.TaskType]model.SchedulingRule{
	model.TaskTypeDeepWork: {
		TaskType:        model.TaskTypeDeepWork,
		PreferredStart:  "09:00",
		PreferredEnd:    "12:00",
		PreferredDays:   weekdays,
		DefaultDuration: 90,
		BufferBefore:    10,
		BufferAfter:     10,
		Enabled:         true,
	},
	model.TaskTypeCoding: {
		TaskType:        model.TaskTypeCoding,
		PreferredStart:  "09:00",
		PreferredEnd:    "17:00",
		PreferredDays:   weekdays,
		DefaultDuration: 60,
		BufferBefore:    5,
		BufferAfter:     5,
		Enabled:         true,
	},
	model.TaskTypeCall: {
		TaskType:        model.TaskTypeCall,
		PreferredStart:  "13:00",
		PreferredEnd:    "17:00",
		PreferredDays:   weekdays,
		DefaultDuration: 30,
		BufferBefore:    5,
		BufferAfter:     5,
		Enabled:         true,
	},
	model.TaskTypeMeeting: {
		TaskType:        model.TaskTypeMeeting,
		PreferredStart:  "10:00",
		PreferredEnd:    "16:00",
		PreferredDays:   weekdays,
		DefaultDuration: 30,
		BufferBefore:    5,
		BufferAfter:     10,
		Enabled:         true,
	},
	model.TaskTypePersonal: {
		TaskType:        model.TaskTypePersonal,
		PreferredStart:  "17:00",
		PreferredEnd:    "20:00",
		DefaultDuration: 30,
		Enabled:         true,
	},
	model.TaskTypeAdmin: {
		TaskType:        model.TaskTypeAdmin,
		PreferredStart:  "13:00",
		PreferredEnd:    "17:00",
		PreferredDays:   weekdays,
		DefaultDuration: 30,
		Enabled:         true,
	},
	model.TaskTypeHealth: {
		TaskType:        model.TaskTypeHealth,
		PreferredStart:  "17:00",
		PreferredEnd:    "19:00",
		DefaultDuration: 60,
		BufferBefore:    15,
		BufferAfter:     15,
		Enabled:         true,
	},
	model.TaskTypeOther: {
		TaskType:        model.TaskTypeOther,
		PreferredStart:  "09:00",
		PreferredEnd:    "17:00",
		PreferredDays:   weekdays,
		DefaultDuration: 30,
		Enabled:         true,
	},
}

// DefaultRule returns the built-in rule for a task type, falling back
// to the "other" entry for unknown or empty types.
func DefaultRule(taskType model.TaskType) model.SchedulingRule {
	if r, ok := defaultTable[taskType]; ok {
		return r
	}
	return defaultTable[model.TaskTypeOther]
}
