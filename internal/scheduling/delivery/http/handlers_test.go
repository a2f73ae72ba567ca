package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/config"
	"smart-task-scheduler/internal/middleware"
	schedulingHTTP "smart-task-scheduler/internal/scheduling/delivery/http"
	"smart-task-scheduler/internal/scheduling/usecase"
	"smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/response"
)

// Monday 2026-03-09.
var day = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	l := log.NewNoop()
	uc := usecase.NewWithClock(l, func() time.Time { return day.Add(7 * time.Hour) })
	h := schedulingHTTP.New(l, uc)
	mw := middleware.New(l, config.AuthConfig{RateLimitPerMin: 10000})

	schedulingHTTP.RegisterRoutes(r.Group("/api/v1/scheduling"), h, mw)
	return r
}

func post(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func suggestBody() map[string]any {
	return map[string]any{
		"task": map[string]any{
			"id":           "task-1",
			"content":      "Deep focus block",
			"priority":     "high",
			"taskType":     "deep_work",
			"timeEstimate": 60,
		},
		"windows": []map[string]any{
			{
				"date": day.Format(time.RFC3339),
				"slots": []map[string]any{
					{
						"start": day.Add(9 * time.Hour).Format(time.RFC3339),
						"end":   day.Add(12 * time.Hour).Format(time.RFC3339),
					},
				},
			},
		},
		"preferences": map[string]any{
			"userId": "user-1",
		},
	}
}

func TestSuggestEndpoint(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, "/api/v1/scheduling/suggest", suggestBody())
	if w.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data payload: %v", resp.Data)
	}
	suggestions, ok := data["suggestions"].([]any)
	if !ok || len(suggestions) == 0 {
		t.Fatalf("expected suggestions, got %v", data["suggestions"])
	}

	top, _ := suggestions[0].(map[string]any)
	if top["score"] == nil || top["reasoning"] == "" {
		t.Errorf("suggestion missing score or reasoning: %v", top)
	}
}

func TestSuggestEndpointRejectsMissingTask(t *testing.T) {
	r := newTestRouter()

	body := suggestBody()
	delete(body, "task")
	w := post(t, r, "/api/v1/scheduling/suggest", body)
	if w.Code != nethttp.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestBatchEndpoint(t *testing.T) {
	r := newTestRouter()

	body := map[string]any{
		"tasks": []map[string]any{
			{"id": "low-a", "content": "Batch item A", "priority": "low", "timeEstimate": 60},
			{"id": "high-b", "content": "Batch item B", "priority": "high", "timeEstimate": 60},
		},
		"windows": []map[string]any{
			{
				"date": day.Format(time.RFC3339),
				"slots": []map[string]any{
					{
						"start": day.Add(9 * time.Hour).Format(time.RFC3339),
						"end":   day.Add(10 * time.Hour).Format(time.RFC3339),
					},
				},
			},
		},
		"preferences": map[string]any{"userId": "user-1"},
	}

	w := post(t, r, "/api/v1/scheduling/batch", body)
	if w.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	data, _ := resp.Data.(map[string]any)
	scheduled, _ := data["scheduled"].([]any)
	if len(scheduled) != 1 {
		t.Fatalf("expected 1 assignment, got %v", data["scheduled"])
	}
	first, _ := scheduled[0].(map[string]any)
	if first["taskId"] != "high-b" {
		t.Errorf("priority order violated, scheduled %v first", first["taskId"])
	}
	if data["runId"] == "" {
		t.Error("expected a run id")
	}
}

func TestBatchEndpointValidationFailure(t *testing.T) {
	r := newTestRouter()

	// Bindable but semantically empty: validation layer must reject it.
	body := map[string]any{
		"tasks":       []map[string]any{{"id": "t1"}},
		"windows":     []map[string]any{},
		"preferences": map[string]any{"userId": "user-1"},
	}

	w := post(t, r, "/api/v1/scheduling/batch", body)
	if w.Code != nethttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", w.Code, w.Body.String())
	}

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Errors == nil {
		t.Errorf("expected validation details in errors field, body = %s", w.Body.String())
	}
}

func TestScoreEndpoint(t *testing.T) {
	r := newTestRouter()

	body := map[string]any{
		"task": map[string]any{
			"id":           "task-1",
			"content":      "Deep focus block",
			"priority":     "high",
			"taskType":     "deep_work",
			"timeEstimate": 60,
		},
		"slot": map[string]any{
			"start": day.Add(9 * time.Hour).Format(time.RFC3339),
			"end":   day.Add(10 * time.Hour).Format(time.RFC3339),
		},
		"windows": []map[string]any{
			{
				"date": day.Format(time.RFC3339),
				"slots": []map[string]any{
					{
						"start": day.Add(9 * time.Hour).Format(time.RFC3339),
						"end":   day.Add(12 * time.Hour).Format(time.RFC3339),
					},
				},
			},
		},
		"preferences": map[string]any{"userId": "user-1"},
	}

	w := post(t, r, "/api/v1/scheduling/score", body)
	if w.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	data, _ := resp.Data.(map[string]any)
	score, _ := data["score"].(float64)
	if score <= 0 || score > 100 {
		t.Errorf("score = %v, want within (0,100]", data["score"])
	}
}

func TestScoreEndpointRejectsInvertedSlot(t *testing.T) {
	r := newTestRouter()

	body := map[string]any{
		"task": map[string]any{"id": "task-1"},
		"slot": map[string]any{
			"start": day.Add(10 * time.Hour).Format(time.RFC3339),
			"end":   day.Add(9 * time.Hour).Format(time.RFC3339),
		},
		"windows":     []map[string]any{{"date": day.Format(time.RFC3339), "slots": []map[string]any{}}},
		"preferences": map[string]any{"userId": "user-1"},
	}

	w := post(t, r, "/api/v1/scheduling/score", body)
	if w.Code != nethttp.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDisplacementsEndpoint(t *testing.T) {
	r := newTestRouter()

	body := map[string]any{
		"task": map[string]any{"id": "new-task", "priority": "high", "userId": "user-1"},
		"slot": map[string]any{
			"start": day.Add(9 * time.Hour).Format(time.RFC3339),
			"end":   day.Add(10 * time.Hour).Format(time.RFC3339),
		},
		"existing": []map[string]any{
			{
				"id":      "booking-1",
				"content": "Existing block",
				"managed": true,
				"start":   day.Add(9 * time.Hour).Format(time.RFC3339),
				"end":     day.Add(10 * time.Hour).Format(time.RFC3339),
			},
		},
	}

	w := post(t, r, "/api/v1/scheduling/displacements", body)
	if w.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	data, _ := resp.Data.(map[string]any)
	ds, _ := data["displacements"].([]any)
	if len(ds) != 1 {
		t.Fatalf("expected 1 displacement, got %v", data["displacements"])
	}
	d, _ := ds[0].(map[string]any)
	if d["existingId"] != "booking-1" {
		t.Errorf("wrong booking named: %v", d)
	}
}

func TestValidateEndpoint(t *testing.T) {
	r := newTestRouter()

	body := map[string]any{
		"tasks": []map[string]any{
			{"id": "t1", "content": "Batch item", "priority": "medium", "timeEstimate": 60},
		},
		"windows": []map[string]any{
			{
				"date": day.Format(time.RFC3339),
				"slots": []map[string]any{
					{
						"start": day.Add(9 * time.Hour).Format(time.RFC3339),
						"end":   day.Add(10 * time.Hour).Format(time.RFC3339),
					},
				},
			},
		},
		"preferences": map[string]any{"userId": "user-1"},
	}

	w := post(t, r, "/api/v1/scheduling/validate", body)
	if w.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	data, _ := resp.Data.(map[string]any)
	if data["valid"] != true {
		t.Errorf("expected valid=true, got %v", data["valid"])
	}
	if fmt.Sprintf("%v", data["availableMinutes"]) != "60" {
		t.Errorf("availableMinutes = %v, want 60", data["availableMinutes"])
	}
}
