package peerreviewhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"perfreview/internal/domain/peerreview"
	"perfreview/internal/transport/http/api"
	"perfreview/internal/transport/http/middleware"
	"perfreview/internal/transport/http/shared"
)

type Handler struct {
	Allocator *peerreview.Allocator
}

func NewHandler(allocator *peerreview.Allocator) *Handler {
	return &Handler{Allocator: allocator}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/peer-reviews", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/allocate", h.handleAllocate)
		r.Post("/{reviewID}", h.handleSubmit)
	})
}

func (h *Handler) handleAllocate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Department string `json:"department"`
		Period     string `json:"period"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("department", payload.Department, "department is required")
	v.Required("period", payload.Period, "period is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	created, err := h.Allocator.Allocate(r.Context(), payload.Department, payload.Period)
	if err != nil {
		slog.Warn("peer review allocation failed", "department", payload.Department, "period", payload.Period, "err", err)
		api.Fail(w, http.StatusInternalServerError, "allocation_failed", "failed to allocate peer reviews", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "reviewID")

	var payload struct {
		Collaboration   float64 `json:"collaboration"`
		Professionalism float64 `json:"professionalism"`
		Communication   float64 `json:"communication"`
		Comment         string  `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	review, err := h.Allocator.Submit(r.Context(), reviewID, payload.Collaboration, payload.Professionalism, payload.Communication, payload.Comment)
	if err != nil {
		if errors.Is(err, peerreview.ErrReviewNotFound) {
			api.Fail(w, http.StatusNotFound, "review_not_found", "peer review not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "review_submit_failed", "failed to submit peer review", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, review, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Allocator.List(r.Context(), r.URL.Query().Get("reviewee"), r.URL.Query().Get("period"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "review_list_failed", "failed to list peer reviews", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, reviews, middleware.GetRequestID(r.Context()))
}
