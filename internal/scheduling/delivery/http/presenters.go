package http

import (
	"errors"
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/internal/scheduling/conflict"
	"smart-task-scheduler/internal/scheduling/scoring"
)

// --- Request DTOs ---

type taskReq struct {
	ID            string     `json:"id"            binding:"required"`
	Content       string     `json:"content"`
	Priority      string     `json:"priority"      binding:"omitempty,oneof=high medium low"`
	TaskType      string     `json:"taskType"`
	DueDate       *time.Time `json:"dueDate"`
	DueTime       string     `json:"dueTime"`
	TimeEstimate  *int       `json:"timeEstimate"  binding:"omitempty,min=1"`
	BufferBefore  *int       `json:"bufferBefore"  binding:"omitempty,min=0"`
	BufferAfter   *int       `json:"bufferAfter"   binding:"omitempty,min=0"`
	ScheduledTime string     `json:"scheduledTime" binding:"omitempty,oneof=morning afternoon evening"`
	UserID        string     `json:"userId"`
	CreatedAt     *time.Time `json:"createdAt"`
}

func (r taskReq) toModel() model.Task {
	t := model.Task{
		ID:            r.ID,
		Content:       r.Content,
		Priority:      model.Priority(r.Priority),
		TaskType:      model.TaskType(r.TaskType),
		DueDate:       r.DueDate,
		DueTime:       r.DueTime,
		TimeEstimate:  r.TimeEstimate,
		BufferBefore:  r.BufferBefore,
		BufferAfter:   r.BufferAfter,
		ScheduledTime: r.ScheduledTime,
		UserID:        r.UserID,
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if r.CreatedAt != nil {
		t.CreatedAt = *r.CreatedAt
	}
	return t
}

type slotReq struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end"   binding:"required"`
}

func (r slotReq) toModel() model.TimeSlot {
	return model.TimeSlot{Start: r.Start, End: r.End, Available: true}
}

func (r slotReq) validate() error {
	if !r.End.After(r.Start) {
		return errors.New("slot end must be after start")
	}
	return nil
}

type windowReq struct {
	Date  time.Time `json:"date"  binding:"required"`
	Slots []slotReq `json:"slots" binding:"required"`
}

func (r windowReq) toModel() model.AvailabilityWindow {
	w := model.AvailabilityWindow{Date: r.Date}
	for _, s := range r.Slots {
		slot := s.toModel()
		w.Slots = append(w.Slots, slot)
		w.FreeMinutes += slot.Minutes()
	}
	return w
}

type ruleReq struct {
	ID              string `json:"id"`
	TaskType        string `json:"taskType" binding:"required"`
	PreferredStart  string `json:"preferredStart"`
	PreferredEnd    string `json:"preferredEnd"`
	PreferredDays   []int  `json:"preferredDays" binding:"omitempty,dive,min=0,max=6"`
	DefaultDuration int    `json:"defaultDuration" binding:"omitempty,min=0"`
	BufferBefore    int    `json:"bufferBefore"    binding:"omitempty,min=0"`
	BufferAfter     int    `json:"bufferAfter"     binding:"omitempty,min=0"`
	Enabled         *bool  `json:"enabled"`
}

func (r ruleReq) toModel() model.SchedulingRule {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	return model.SchedulingRule{
		ID:              r.ID,
		TaskType:        model.TaskType(r.TaskType),
		PreferredStart:  r.PreferredStart,
		PreferredEnd:    r.PreferredEnd,
		PreferredDays:   r.PreferredDays,
		DefaultDuration: r.DefaultDuration,
		BufferBefore:    r.BufferBefore,
		BufferAfter:     r.BufferAfter,
		Enabled:         enabled,
	}
}

type protectedSlotReq struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Days                   []int  `json:"days"      binding:"omitempty,dive,min=0,max=6"`
	StartTime              string `json:"startTime" binding:"required"`
	EndTime                string `json:"endTime"   binding:"required"`
	AllowOverrideForUrgent bool   `json:"allowOverrideForUrgent"`
	Enabled                *bool  `json:"enabled"`
}

func (r protectedSlotReq) toModel() model.ProtectedSlot {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	return model.ProtectedSlot{
		ID:                     r.ID,
		Name:                   r.Name,
		Days:                   r.Days,
		StartTime:              r.StartTime,
		EndTime:                r.EndTime,
		AllowOverrideForUrgent: r.AllowOverrideForUrgent,
		Enabled:                enabled,
	}
}

type existingReq struct {
	ID              string    `json:"id"    binding:"required"`
	TaskID          string    `json:"taskId"`
	Content         string    `json:"content"`
	Priority        string    `json:"priority" binding:"omitempty,oneof=high medium low"`
	CalendarEventID string    `json:"calendarEventId"`
	Start           time.Time `json:"start" binding:"required"`
	End             time.Time `json:"end"   binding:"required"`
	Managed         bool      `json:"managed"`
}

func (r existingReq) toModel() model.ScheduledTask {
	return model.ScheduledTask{
		ID:              r.ID,
		TaskID:          r.TaskID,
		Content:         r.Content,
		Priority:        model.Priority(r.Priority),
		CalendarEventID: r.CalendarEventID,
		Start:           r.Start,
		End:             r.End,
		Managed:         r.Managed,
	}
}

type preferencesReq struct {
	UserID                 string `json:"userId" binding:"required"`
	WorkingHoursStart      string `json:"workingHoursStart"`
	WorkingHoursEnd        string `json:"workingHoursEnd"`
	WorkingDays            []int  `json:"workingDays" binding:"omitempty,dive,min=0,max=6"`
	Timezone               string `json:"timezone"`
	DefaultCalendarID      string `json:"defaultCalendarId"`
	PreferContiguousBlocks bool   `json:"preferContiguousBlocks"`
}

func (r preferencesReq) toModel() model.SchedulingPreferences {
	p := model.DefaultPreferences(r.UserID)
	if r.WorkingHoursStart != "" {
		p.WorkingHoursStart = r.WorkingHoursStart
	}
	if r.WorkingHoursEnd != "" {
		p.WorkingHoursEnd = r.WorkingHoursEnd
	}
	if len(r.WorkingDays) > 0 {
		p.WorkingDays = r.WorkingDays
	}
	if r.Timezone != "" {
		p.Timezone = r.Timezone
	}
	if r.DefaultCalendarID != "" {
		p.DefaultCalendarID = r.DefaultCalendarID
	}
	p.PreferContiguousBlocks = r.PreferContiguousBlocks
	return p
}

type suggestReq struct {
	Task           taskReq            `json:"task"    binding:"required"`
	Windows        []windowReq        `json:"windows" binding:"required"`
	Rules          []ruleReq          `json:"rules"`
	ProtectedSlots []protectedSlotReq `json:"protectedSlots"`
	Existing       []existingReq      `json:"existing"`
	Preferences    preferencesReq     `json:"preferences" binding:"required"`
	MaxSuggestions int                `json:"maxSuggestions" binding:"omitempty,min=1,max=50"`
}

func (r suggestReq) validate() error {
	for _, w := range r.Windows {
		for _, s := range w.Slots {
			if err := s.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r suggestReq) toInput() scheduling.ScheduleTaskInput {
	return scheduling.ScheduleTaskInput{
		Task:           r.Task.toModel(),
		Windows:        toWindows(r.Windows),
		Rules:          toRules(r.Rules),
		ProtectedSlots: toProtected(r.ProtectedSlots),
		Existing:       toExisting(r.Existing),
		Preferences:    r.Preferences.toModel(),
		MaxSuggestions: r.MaxSuggestions,
	}
}

type batchReq struct {
	Tasks           []taskReq          `json:"tasks"   binding:"required"`
	Windows         []windowReq        `json:"windows" binding:"required"`
	Rules           []ruleReq          `json:"rules"`
	ProtectedSlots  []protectedSlotReq `json:"protectedSlots"`
	Existing        []existingReq      `json:"existing"`
	Preferences     preferencesReq     `json:"preferences" binding:"required"`
	RespectPriority *bool              `json:"respectPriority"`
}

func (r batchReq) validate() error {
	for _, w := range r.Windows {
		for _, s := range w.Slots {
			if err := s.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r batchReq) toInput() scheduling.BatchScheduleInput {
	respect := true
	if r.RespectPriority != nil {
		respect = *r.RespectPriority
	}
	tasks := make([]model.Task, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		tasks = append(tasks, t.toModel())
	}
	return scheduling.BatchScheduleInput{
		Tasks:           tasks,
		Windows:         toWindows(r.Windows),
		Rules:           toRules(r.Rules),
		ProtectedSlots:  toProtected(r.ProtectedSlots),
		Existing:        toExisting(r.Existing),
		Preferences:     r.Preferences.toModel(),
		RespectPriority: respect,
	}
}

type scoreReq struct {
	Task        taskReq        `json:"task"    binding:"required"`
	Slot        slotReq        `json:"slot"    binding:"required"`
	Windows     []windowReq    `json:"windows" binding:"required"`
	Rules       []ruleReq      `json:"rules"`
	Preferences preferencesReq `json:"preferences" binding:"required"`
}

func (r scoreReq) validate() error { return r.Slot.validate() }

func (r scoreReq) toInput() scheduling.ScoreSlotInput {
	return scheduling.ScoreSlotInput{
		Task:        r.Task.toModel(),
		Slot:        r.Slot.toModel(),
		Windows:     toWindows(r.Windows),
		Rules:       toRules(r.Rules),
		Preferences: r.Preferences.toModel(),
	}
}

type displacementsReq struct {
	Task     taskReq       `json:"task"     binding:"required"`
	Slot     slotReq       `json:"slot"     binding:"required"`
	Existing []existingReq `json:"existing" binding:"required"`
}

func (r displacementsReq) validate() error { return r.Slot.validate() }

func (r displacementsReq) toInput() scheduling.CheckDisplacementsInput {
	return scheduling.CheckDisplacementsInput{
		Task:     r.Task.toModel(),
		Slot:     r.Slot.toModel(),
		Existing: toExisting(r.Existing),
	}
}

func toWindows(reqs []windowReq) []model.AvailabilityWindow {
	out := make([]model.AvailabilityWindow, 0, len(reqs))
	for _, w := range reqs {
		out = append(out, w.toModel())
	}
	return out
}

func toRules(reqs []ruleReq) []model.SchedulingRule {
	out := make([]model.SchedulingRule, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.toModel())
	}
	return out
}

func toProtected(reqs []protectedSlotReq) []model.ProtectedSlot {
	out := make([]model.ProtectedSlot, 0, len(reqs))
	for _, p := range reqs {
		out = append(out, p.toModel())
	}
	return out
}

func toExisting(reqs []existingReq) []model.ScheduledTask {
	out := make([]model.ScheduledTask, 0, len(reqs))
	for _, e := range reqs {
		out = append(out, e.toModel())
	}
	return out
}

// --- Response DTOs ---

type slotResp struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func newSlotResp(s model.TimeSlot) slotResp {
	return slotResp{Start: s.Start, End: s.End}
}

type factorResp struct {
	Name        string `json:"name"`
	Weight      int    `json:"weight"`
	Value       int    `json:"value"`
	Description string `json:"description"`
}

type conflictResp struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Resolution  string `json:"resolution,omitempty"`
	EventID     string `json:"eventId,omitempty"`
}

type displacementResp struct {
	ExistingID       string `json:"existingId"`
	ExistingTaskID   string `json:"existingTaskId,omitempty"`
	ExistingContent  string `json:"existingContent,omitempty"`
	ExistingPriority string `json:"existingPriority"`
	NewPriority      string `json:"newPriority"`
	Recommended      bool   `json:"recommended"`
	Reason           string `json:"reason"`
}

type suggestionResp struct {
	Slot          slotResp           `json:"slot"`
	Score         int                `json:"score"`
	Factors       []factorResp       `json:"factors"`
	Reasoning     string             `json:"reasoning"`
	Conflicts     []conflictResp     `json:"conflicts,omitempty"`
	Displacements []displacementResp `json:"displacements,omitempty"`
}

func newSuggestionResp(s scheduling.SchedulingSuggestion) suggestionResp {
	resp := suggestionResp{
		Slot:      newSlotResp(s.Slot),
		Score:     s.Score,
		Reasoning: s.Reasoning,
		Factors:   newFactorResps(s.Factors),
	}
	for _, c := range s.Conflicts {
		resp.Conflicts = append(resp.Conflicts, newConflictResp(c))
	}
	for _, d := range s.Displacements {
		resp.Displacements = append(resp.Displacements, newDisplacementResp(d))
	}
	return resp
}

func newFactorResps(factors []scoring.Factor) []factorResp {
	out := make([]factorResp, 0, len(factors))
	for _, f := range factors {
		out = append(out, factorResp{
			Name:        f.Name,
			Weight:      f.Weight,
			Value:       f.Value,
			Description: f.Description,
		})
	}
	return out
}

func newConflictResp(c conflict.Conflict) conflictResp {
	return conflictResp{
		Type:        string(c.Type),
		Severity:    string(c.Severity),
		Description: c.Description,
		Resolution:  c.Resolution,
		EventID:     c.EventID,
	}
}

func newDisplacementResp(d conflict.Displacement) displacementResp {
	return displacementResp{
		ExistingID:       d.ExistingID,
		ExistingTaskID:   d.ExistingTaskID,
		ExistingContent:  d.ExistingContent,
		ExistingPriority: string(d.ExistingPriority),
		NewPriority:      string(d.NewPriority),
		Recommended:      d.Recommended,
		Reason:           d.Reason,
	}
}

type suggestResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
}

func (h *handler) newSuggestResp(out scheduling.ScheduleTaskOutput) suggestResp {
	resp := suggestResp{Suggestions: make([]suggestionResp, 0, len(out.Suggestions))}
	for _, s := range out.Suggestions {
		resp.Suggestions = append(resp.Suggestions, newSuggestionResp(s))
	}
	return resp
}

type assignmentResp struct {
	TaskID    string                  `json:"taskId"`
	Content   string                  `json:"content"`
	Slot      slotResp                `json:"slot"`
	Score     int                     `json:"score"`
	Reasoning string                  `json:"reasoning"`
	Event     scheduling.EventPayload `json:"event"`
}

type batchResp struct {
	RunID         string                         `json:"runId"`
	Scheduled     []assignmentResp               `json:"scheduled"`
	Conflicts     []scheduling.BatchConflict     `json:"conflicts,omitempty"`
	Unschedulable []scheduling.UnschedulableTask `json:"unschedulable,omitempty"`
	Summary       scheduling.BatchSummary        `json:"summary"`
}

func (h *handler) newBatchResp(out scheduling.BatchScheduleOutput) batchResp {
	resp := batchResp{
		RunID:         out.RunID,
		Scheduled:     make([]assignmentResp, 0, len(out.Scheduled)),
		Conflicts:     out.Conflicts,
		Unschedulable: out.Unschedulable,
		Summary:       out.Summary,
	}
	for _, a := range out.Scheduled {
		resp.Scheduled = append(resp.Scheduled, assignmentResp{
			TaskID:    a.TaskID,
			Content:   a.Content,
			Slot:      newSlotResp(a.Slot),
			Score:     a.Score,
			Reasoning: a.Reasoning,
			Event:     a.Event,
		})
	}
	return resp
}

type displacementsResp struct {
	Displacements []displacementResp `json:"displacements"`
}

func (h *handler) newDisplacementsResp(ds []conflict.Displacement) displacementsResp {
	resp := displacementsResp{Displacements: make([]displacementResp, 0, len(ds))}
	for _, d := range ds {
		resp.Displacements = append(resp.Displacements, newDisplacementResp(d))
	}
	return resp
}
