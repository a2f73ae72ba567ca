package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
	schedulingHTTP "smart-task-scheduler/internal/scheduling/delivery/http"
)

// setupSchedulingDomain registers the scheduling decision engine routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupSchedulingDomain(ctx context.Context, api *gin.RouterGroup) error {
	mw := middleware.New(srv.l, srv.authCfg)

	h := schedulingHTTP.New(srv.l, srv.schedulingUC)

	// Routes: registers /api/v1/scheduling/*
	schedulingHTTP.RegisterRoutes(api.Group("/scheduling"), h, mw)

	srv.l.Infof(ctx, "Scheduling domain registered")
	return nil
}
