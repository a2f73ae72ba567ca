package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware by convention.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/suggest", mw.Auth(), mw.RateLimit(), h.Suggest)
	rg.POST("/batch", mw.Auth(), mw.RateLimit(), h.Batch)
	rg.POST("/score", mw.Auth(), mw.RateLimit(), h.Score)
	rg.POST("/displacements", mw.Auth(), mw.RateLimit(), h.Displacements)
	rg.POST("/validate", mw.Auth(), mw.RateLimit(), h.Validate)
}
