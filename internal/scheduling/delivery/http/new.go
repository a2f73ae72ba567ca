package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/pkg/log"
)

// Handler is the public interface for the scheduling HTTP delivery layer.
type Handler interface {
	Suggest(c *gin.Context)
	Batch(c *gin.Context)
	Score(c *gin.Context)
	Displacements(c *gin.Context)
	Validate(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc scheduling.UseCase
}

// New creates a new HTTP handler for the scheduling domain.
func New(l log.Logger, uc scheduling.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
