package todoshandler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"perfreview/internal/domain/todo"
	"perfreview/internal/transport/http/api"
	"perfreview/internal/transport/http/middleware"
)

type Handler struct {
	Store todo.StoreAPI
}

func NewHandler(store todo.StoreAPI) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/todos", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/{todoID}/complete", h.handleComplete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee")
	if employeeID == "" {
		api.Fail(w, http.StatusBadRequest, "missing_employee", "employee query parameter is required", middleware.GetRequestID(r.Context()))
		return
	}

	items, err := h.Store.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "todo_list_failed", "failed to list todos", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, items, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "todoID")
	if err := h.Store.Complete(r.Context(), todoID, time.Now().UTC()); err != nil {
		if errors.Is(err, todo.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "todo_not_found", "todo not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "todo_update_failed", "failed to complete todo", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "completed"}, middleware.GetRequestID(r.Context()))
}
