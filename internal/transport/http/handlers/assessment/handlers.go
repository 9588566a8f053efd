package assessmenthandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"perfreview/internal/domain/assessment"
	"perfreview/internal/transport/http/api"
	"perfreview/internal/transport/http/middleware"
	"perfreview/internal/transport/http/shared"
)

type Handler struct {
	Service *assessment.Service
}

func NewHandler(service *assessment.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/assessment-cycles", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Post("/{cycleID}/activate", h.handleActivate)
		r.Post("/{cycleID}/close", h.handleClose)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name                   string `json:"name"`
		Type                   string `json:"type"`
		Year                   int    `json:"year"`
		StartDate              string `json:"startDate"`
		EndDate                string `json:"endDate"`
		SelfAssessmentDeadline string `json:"selfAssessmentDeadline"`
		ManagerReviewDeadline  string `json:"managerReviewDeadline"`
		HRReviewDeadline       string `json:"hrReviewDeadline"`
		AppealDeadline         string `json:"appealDeadline"`
		ReminderDays           int    `json:"reminderDays"`
		AutoSubmit             bool   `json:"autoSubmit"`
		ExcludeHolidays        bool   `json:"excludeHolidays"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "cycle name is required")
	v.Enum("type", payload.Type, []string{assessment.TypeMonthly, assessment.TypeQuarterly, assessment.TypeAnnual}, "must be monthly, quarterly or annual")
	startDate, _ := v.Date("startDate", payload.StartDate)
	endDate, _ := v.Date("endDate", payload.EndDate)
	v.DateOrder("startDate", startDate, "endDate", endDate)

	in := assessment.CreateCycleInput{
		Name:            payload.Name,
		Type:            payload.Type,
		Year:            payload.Year,
		StartDate:       startDate,
		EndDate:         endDate,
		ReminderDays:    payload.ReminderDays,
		AutoSubmit:      payload.AutoSubmit,
		ExcludeHolidays: payload.ExcludeHolidays,
	}
	if payload.SelfAssessmentDeadline != "" {
		in.SelfAssessmentDeadline, _ = v.Date("selfAssessmentDeadline", payload.SelfAssessmentDeadline)
	}
	if payload.ManagerReviewDeadline != "" {
		in.ManagerReviewDeadline, _ = v.Date("managerReviewDeadline", payload.ManagerReviewDeadline)
	}
	if payload.HRReviewDeadline != "" {
		in.HRReviewDeadline, _ = v.Date("hrReviewDeadline", payload.HRReviewDeadline)
	}
	if payload.AppealDeadline != "" {
		in.AppealDeadline, _ = v.Date("appealDeadline", payload.AppealDeadline)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	cycle, err := h.Service.Create(r.Context(), in)
	if err != nil {
		slog.Warn("cycle create failed", "err", err)
		api.Fail(w, http.StatusBadRequest, "cycle_create_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, cycle, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleActivate(w http.ResponseWriter, r *http.Request) {
	cycleID := chi.URLParam(r, "cycleID")
	cycle, err := h.Service.Activate(r.Context(), cycleID)
	if err != nil {
		if errors.Is(err, assessment.ErrCycleNotFound) {
			api.Fail(w, http.StatusNotFound, "cycle_not_found", "assessment cycle not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusConflict, "cycle_activate_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, cycle, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	cycleID := chi.URLParam(r, "cycleID")
	if err := h.Service.Close(r.Context(), cycleID); err != nil {
		if errors.Is(err, assessment.ErrCycleNotFound) {
			api.Fail(w, http.StatusNotFound, "cycle_not_found", "assessment cycle not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "cycle_close_failed", "failed to close cycle", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "closed"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	cycles, err := h.Service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cycle_list_failed", "failed to list cycles", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, cycles, middleware.GetRequestID(r.Context()))
}
