package httpserver

import (
	"testing"

	"smart-task-scheduler/config"
	"smart-task-scheduler/internal/scheduling/usecase"
	"smart-task-scheduler/pkg/log"
)

func TestNew(t *testing.T) {
	logger := log.NewNoop()
	cfg := Config{
		Port:         8080,
		Mode:         "test",
		Environment:  "dev",
		SchedulingUC: usecase.New(logger),
		Auth:         config.AuthConfig{},
	}

	srv, err := New(logger, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if srv.l == nil || srv.schedulingUC == nil {
		t.Error("dependencies not carried onto the server")
	}

	if _, err := New(logger, Config{Port: 8080, Mode: "test"}); err == nil {
		t.Error("expected validation error without a scheduling use case")
	}
	if _, err := New(nil, cfg); err == nil {
		t.Error("expected validation error without a logger")
	}
}
