package performancehandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"perfreview/internal/domain/employee"
	"perfreview/internal/domain/performance"
	"perfreview/internal/transport/http/api"
	"perfreview/internal/transport/http/middleware"
	"perfreview/internal/transport/http/shared"
)

type Handler struct {
	Service *performance.Service
}

func NewHandler(service *performance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/performance", func(r chi.Router) {
		r.Post("/records", h.handleSubmitSummary)
		r.Get("/records", h.handleListRecords)
		r.Post("/records/{recordID}/score", h.handleSubmitScores)
		r.Post("/ranks/recompute", h.handleRecomputeRanks)
	})
}

func (h *Handler) handleSubmitSummary(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID     string `json:"employeeId"`
		Period         string `json:"period"`
		SelfSummary    string `json:"selfSummary"`
		NextPeriodPlan string `json:"nextPeriodPlan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	v.Required("period", payload.Period, "period is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	record, err := h.Service.SubmitSummary(r.Context(), payload.EmployeeID, payload.Period, payload.SelfSummary, payload.NextPeriodPlan)
	if err != nil {
		switch {
		case errors.Is(err, performance.ErrRecordExists):
			api.Fail(w, http.StatusConflict, "record_exists", "a record already exists for this employee and period", middleware.GetRequestID(r.Context()))
		case errors.Is(err, employee.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		default:
			slog.Warn("submit summary failed", "err", err)
			api.Fail(w, http.StatusInternalServerError, "record_create_failed", "failed to create record", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Created(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmitScores(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")

	var payload struct {
		TaskCompletion     float64 `json:"taskCompletion"`
		Initiative         float64 `json:"initiative"`
		ProjectFeedback    float64 `json:"projectFeedback"`
		QualityImprovement float64 `json:"qualityImprovement"`
		ManagerComment     string  `json:"managerComment"`
		AssessorID         string  `json:"assessorId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	record, err := h.Service.SubmitScores(r.Context(), recordID, performance.ScoreInput{
		TaskCompletion:     payload.TaskCompletion,
		Initiative:         payload.Initiative,
		ProjectFeedback:    payload.ProjectFeedback,
		QualityImprovement: payload.QualityImprovement,
		ManagerComment:     payload.ManagerComment,
		AssessorID:         payload.AssessorID,
	})
	if err != nil {
		if errors.Is(err, performance.ErrRecordNotFound) {
			api.Fail(w, http.StatusNotFound, "record_not_found", "record not found", middleware.GetRequestID(r.Context()))
			return
		}
		slog.Warn("submit scores failed", "recordId", recordID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "score_failed", "failed to store scores", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRecomputeRanks(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Period string `json:"period"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("period", payload.Period, "period is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	if err := h.Service.RecomputeRanks(r.Context(), payload.Period); err != nil {
		slog.Warn("rank recompute failed", "period", payload.Period, "err", err)
		api.Fail(w, http.StatusInternalServerError, "rank_recompute_failed", "failed to recompute ranks", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "recomputed", "period": payload.Period}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		api.Fail(w, http.StatusBadRequest, "missing_period", "period query parameter is required", middleware.GetRequestID(r.Context()))
		return
	}

	records, err := h.Service.ListByPeriod(r.Context(), period)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "record_list_failed", "failed to list records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}
