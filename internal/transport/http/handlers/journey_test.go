package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"perfreview/internal/domain/assessment"
	"perfreview/internal/domain/employee"
	"perfreview/internal/domain/notifications"
	"perfreview/internal/domain/peerreview"
	"perfreview/internal/domain/performance"
	"perfreview/internal/store/memory"
	assessmenthandler "perfreview/internal/transport/http/handlers/assessment"
	notificationshandler "perfreview/internal/transport/http/handlers/notifications"
	peerreviewhandler "perfreview/internal/transport/http/handlers/peerreview"
	performancehandler "perfreview/internal/transport/http/handlers/performance"
	todoshandler "perfreview/internal/transport/http/handlers/todos"
	"perfreview/internal/transport/http/middleware"
)

func newTestServer(t *testing.T, mem *memory.Store) *httptest.Server {
	t.Helper()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Route("/api/v1", func(r chi.Router) {
		performancehandler.NewHandler(performance.NewService(mem.Records(), mem.Employees())).RegisterRoutes(r)
		peerreviewhandler.NewHandler(peerreview.NewAllocator(mem.Employees(), mem.Reviews())).RegisterRoutes(r)
		assessmenthandler.NewHandler(assessment.NewService(mem.Cycles(), nil)).RegisterRoutes(r)
		notificationshandler.NewHandler(notifications.NewService(mem.Notifications())).RegisterRoutes(r)
		todoshandler.NewHandler(mem.Todos()).RegisterRoutes(r)
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, method, url string, payload any) (int, envelope) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, env
}

func TestPerformanceReviewJourney(t *testing.T) {
	mem := memory.New()
	mem.Employees().Seed(
		employee.Employee{ID: "e1", Name: "Ada", Department: "engineering", Role: employee.RoleEmployee, Level: employee.LevelSenior, ManagerID: "m1", Status: employee.StatusActive},
		employee.Employee{ID: "e2", Name: "Lin", Department: "engineering", Role: employee.RoleEmployee, Level: employee.LevelJunior, ManagerID: "m1", Status: employee.StatusActive},
		employee.Employee{ID: "m1", Name: "Grace", Department: "engineering", Role: employee.RoleManager, Level: employee.LevelSenior, Status: employee.StatusActive},
	)
	server := newTestServer(t, mem)
	base := server.URL + "/api/v1"

	// Employee submits the monthly summary.
	status, env := doJSON(t, http.MethodPost, base+"/performance/records", map[string]any{
		"employeeId":  "e1",
		"period":      "2026-08",
		"selfSummary": "shipped the importer",
	})
	if status != http.StatusCreated {
		t.Fatalf("create record: status %d", status)
	}
	var record performance.Record
	if err := json.Unmarshal(env.Data, &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record.GroupType != employee.GroupHigh {
		t.Fatalf("expected high tier snapshot, got %s", record.GroupType)
	}

	// Duplicate submission conflicts.
	status, env = doJSON(t, http.MethodPost, base+"/performance/records", map[string]any{
		"employeeId": "e1",
		"period":     "2026-08",
	})
	if status != http.StatusConflict || env.Error == nil || env.Error.Code != "record_exists" {
		t.Fatalf("expected record_exists conflict, got %d %+v", status, env.Error)
	}

	// Manager scores the record; level and rank come back derived.
	status, env = doJSON(t, http.MethodPost, fmt.Sprintf("%s/performance/records/%s/score", base, record.ID), map[string]any{
		"taskCompletion":     1.5,
		"initiative":         1.5,
		"projectFeedback":    1.5,
		"qualityImprovement": 1.5,
		"managerComment":     "outstanding",
	})
	if status != http.StatusOK {
		t.Fatalf("score record: status %d", status)
	}
	var scored performance.Record
	if err := json.Unmarshal(env.Data, &scored); err != nil {
		t.Fatalf("decode scored record: %v", err)
	}
	if scored.Level != "L5" || scored.TotalScore != 1.5 {
		t.Fatalf("unexpected scoring result: %+v", scored)
	}
	if scored.CompanyRank != 1 {
		t.Fatalf("expected company rank 1, got %d", scored.CompanyRank)
	}

	// Period listing includes the completed record.
	status, env = doJSON(t, http.MethodGet, base+"/performance/records?period=2026-08", nil)
	if status != http.StatusOK {
		t.Fatalf("list records: status %d", status)
	}
	var records []performance.Record
	if err := json.Unmarshal(env.Data, &records); err != nil {
		t.Fatalf("decode records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	// Peer review allocation pairs the two base contributors.
	status, env = doJSON(t, http.MethodPost, base+"/peer-reviews/allocate", map[string]any{
		"department": "engineering",
		"period":     "2026-08",
	})
	if status != http.StatusCreated {
		t.Fatalf("allocate: status %d", status)
	}
	var reviews []peerreview.Review
	if err := json.Unmarshal(env.Data, &reviews); err != nil {
		t.Fatalf("decode reviews: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(reviews))
	}

	// Reviewer submits their scores.
	reviewID := peerreview.CompositeID("e2", "e1", "2026-08")
	status, _ = doJSON(t, http.MethodPost, base+"/peer-reviews/"+reviewID, map[string]any{
		"collaboration":   5,
		"professionalism": 4,
		"communication":   5,
		"comment":         "dependable",
	})
	if status != http.StatusOK {
		t.Fatalf("submit review: status %d", status)
	}

	// HR creates and activates a cycle.
	status, env = doJSON(t, http.MethodPost, base+"/assessment-cycles", map[string]any{
		"name":                   "August 2026",
		"type":                   "monthly",
		"year":                   2026,
		"startDate":              "2026-08-01",
		"endDate":                "2026-08-31",
		"selfAssessmentDeadline": "2026-08-25",
	})
	if status != http.StatusCreated {
		t.Fatalf("create cycle: status %d", status)
	}
	var cycle assessment.Cycle
	if err := json.Unmarshal(env.Data, &cycle); err != nil {
		t.Fatalf("decode cycle: %v", err)
	}
	if cycle.Status != assessment.StatusDraft {
		t.Fatalf("expected draft cycle, got %s", cycle.Status)
	}

	status, env = doJSON(t, http.MethodPost, base+"/assessment-cycles/"+cycle.ID+"/activate", nil)
	if status != http.StatusOK {
		t.Fatalf("activate cycle: status %d", status)
	}
	var activated assessment.Cycle
	if err := json.Unmarshal(env.Data, &activated); err != nil {
		t.Fatalf("decode activated cycle: %v", err)
	}
	if activated.Status != assessment.StatusActive {
		t.Fatalf("expected active cycle, got %s", activated.Status)
	}

	status, env = doJSON(t, http.MethodGet, base+"/assessment-cycles?status=active", nil)
	if status != http.StatusOK {
		t.Fatalf("list cycles: status %d", status)
	}
	var cycles []assessment.Cycle
	if err := json.Unmarshal(env.Data, &cycles); err != nil {
		t.Fatalf("decode cycles: %v", err)
	}
	if len(cycles) != 1 {
		t.Fatalf("expected 1 active cycle, got %d", len(cycles))
	}
}

func TestValidationRejectsMissingFields(t *testing.T) {
	mem := memory.New()
	server := newTestServer(t, mem)
	base := server.URL + "/api/v1"

	status, env := doJSON(t, http.MethodPost, base+"/performance/records", map[string]any{})
	if status != http.StatusBadRequest || env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %d %+v", status, env.Error)
	}

	status, env = doJSON(t, http.MethodPost, base+"/assessment-cycles", map[string]any{
		"name":      "bad",
		"type":      "weekly",
		"startDate": "2026-08-01",
		"endDate":   "2026-08-31",
	})
	if status != http.StatusBadRequest || env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error for bad type, got %d %+v", status, env.Error)
	}
}
