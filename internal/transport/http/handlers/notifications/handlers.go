package notificationshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"perfreview/internal/domain/notifications"
	"perfreview/internal/transport/http/api"
	"perfreview/internal/transport/http/middleware"
	"perfreview/internal/transport/http/shared"
)

type Handler struct {
	Service *notifications.Service
}

func NewHandler(service *notifications.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/{notificationID}/read", h.handleMarkRead)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	recipient := r.URL.Query().Get("recipient")
	if recipient == "" {
		api.Fail(w, http.StatusBadRequest, "missing_recipient", "recipient query parameter is required", middleware.GetRequestID(r.Context()))
		return
	}

	items, err := h.Service.ListByRecipient(r.Context(), recipient)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "notification_list_failed", "failed to list notifications", middleware.GetRequestID(r.Context()))
		return
	}

	page := shared.ParsePagination(r, 100, 500)
	if page.Offset < len(items) {
		end := page.Offset + page.Limit
		if end > len(items) {
			end = len(items)
		}
		items = items[page.Offset:end]
	} else {
		items = nil
	}
	api.Success(w, items, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, "notificationID")
	if err := h.Service.MarkRead(r.Context(), notificationID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "notification_update_failed", "failed to update notification", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "read"}, middleware.GetRequestID(r.Context()))
}
