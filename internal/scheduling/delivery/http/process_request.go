package http

import (
	"github.com/gin-gonic/gin"
)

// processSuggestReq binds and validates the single-task suggestion body.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processBatchReq binds and validates the batch scheduling body.
func (h *handler) processBatchReq(c *gin.Context) (batchReq, error) {
	var req batchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processScoreReq binds and validates the slot scoring body.
func (h *handler) processScoreReq(c *gin.Context) (scoreReq, error) {
	var req scoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDisplacementsReq binds and validates the displacement query body.
func (h *handler) processDisplacementsReq(c *gin.Context) (displacementsReq, error) {
	var req displacementsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
