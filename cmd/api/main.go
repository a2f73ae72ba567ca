package main

import (
	"context"
	"fmt"
	"time"

	"smart-task-scheduler/config"
	_ "smart-task-scheduler/docs" // Swagger docs
	"smart-task-scheduler/internal/availability"
	"smart-task-scheduler/internal/httpserver"
	schedulingUC "smart-task-scheduler/internal/scheduling/usecase"
	"smart-task-scheduler/pkg/gcalendar"
	"smart-task-scheduler/pkg/log"
)

// @title       Smart Task Scheduler API
// @description Scheduling decision engine: candidate slot generation, weighted scoring, conflict detection and batch allocation against Google Calendar availability.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Smart Task Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Scheduling horizon: %d days, max suggestions: %d",
		cfg.Scheduling.HorizonDays, cfg.Scheduling.MaxSuggestions)

	// 3. Google Calendar client (optional)
	var availabilitySvc *availability.Service
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			ttl := time.Duration(cfg.Scheduling.SnapshotTTLSeconds) * time.Second
			availabilitySvc = availability.NewService(calendarClient, logger, ttl)
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 4. Scheduling engine
	uc := schedulingUC.New(logger)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		SchedulingUC:    uc,
		Auth:            cfg.Auth,
		AvailabilitySvc: availabilitySvc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
