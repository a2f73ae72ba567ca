package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/config"
	"smart-task-scheduler/internal/availability"
	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Scheduling domain
	schedulingUC scheduling.UseCase
	authCfg      config.AuthConfig

	// Availability domain (optional, requires a calendar client)
	availabilitySvc *availability.Service
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	SchedulingUC    scheduling.UseCase
	Auth            config.AuthConfig
	AvailabilitySvc *availability.Service
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		schedulingUC:    cfg.SchedulingUC,
		authCfg:         cfg.Auth,
		availabilitySvc: cfg.AvailabilitySvc,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.schedulingUC == nil {
		return errors.New("scheduling use case is required")
	}
	return nil
}
