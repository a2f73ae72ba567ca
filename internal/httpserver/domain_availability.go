package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	availabilityHTTP "smart-task-scheduler/internal/availability/delivery/http"
	"smart-task-scheduler/internal/middleware"
)

// setupAvailabilityDomain registers the calendar availability routes.
// The domain is optional: it needs a Google Calendar client, so it is
// skipped when none is configured.
func (srv HTTPServer) setupAvailabilityDomain(ctx context.Context, api *gin.RouterGroup) error {
	if srv.availabilitySvc == nil {
		srv.l.Infof(ctx, "Availability domain skipped: no calendar client configured")
		return nil
	}

	mw := middleware.New(srv.l, srv.authCfg)
	h := availabilityHTTP.New(srv.l, srv.availabilitySvc)

	// Routes: registers /api/v1/availability/*
	availabilityHTTP.RegisterRoutes(api.Group("/availability"), h, mw)

	srv.l.Infof(ctx, "Availability domain registered")
	return nil
}
