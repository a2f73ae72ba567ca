package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/pkg/response"
)

// Suggest godoc
// @Summary     Suggest slots for one task
// @Description Finds, scores and ranks candidate time slots for a single task.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Task, availability and context"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduling/suggest [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc := model.Scope{UserID: req.Preferences.UserID}
	output, err := h.uc.ScheduleTask(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

// Batch godoc
// @Summary     Schedule a batch of tasks
// @Description Allocates slots for many tasks in priority order within one availability snapshot.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body batchReq true "Tasks, availability and context"
// @Success     200 {object} batchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduling/batch [POST]
func (h *handler) Batch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBatchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc := model.Scope{UserID: req.Preferences.UserID}
	output, err := h.uc.ScheduleBatch(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleBatch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBatchResp(output))
}

// Score godoc
// @Summary     Score a specific slot
// @Description Scores one caller-chosen slot for a task, for UI previews.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body scoreReq true "Task, slot and context"
// @Success     200 {object} suggestionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduling/score [POST]
func (h *handler) Score(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScoreReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc := model.Scope{UserID: req.Preferences.UserID}
	output, err := h.uc.ScoreSlot(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ScoreSlot: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSuggestionResp(output))
}

// Displacements godoc
// @Summary     List displaceable bookings for a slot
// @Description Lists existing bookings a task could bump out of the given slot.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body displacementsReq true "Task, slot and existing bookings"
// @Success     200 {object} displacementsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduling/displacements [POST]
func (h *handler) Displacements(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDisplacementsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc := model.Scope{UserID: req.Task.UserID}
	output, err := h.uc.CheckDisplacements(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckDisplacements: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDisplacementsResp(output))
}

// Validate godoc
// @Summary     Validate a batch request
// @Description Runs the batch pre-flight checks without scheduling anything.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body batchReq true "Tasks, availability and context"
// @Success     200 {object} scheduling.ValidationResult
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduling/validate [POST]
func (h *handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBatchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc := model.Scope{UserID: req.Preferences.UserID}
	output, err := h.uc.ValidateBatch(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ValidateBatch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}
