package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mwale-dev/shopledger/internal/apperr"
	"github.com/mwale-dev/shopledger/internal/httpx"
)

// Handler exposes the employee directory HTTP endpoints (owner only).
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/owner/employees", h.listEmployees)
	router.Post("/owner/employees", h.createEmployee)
	router.Put("/owner/employees/{id}", h.updateEmployee)
	router.Delete("/owner/employees/{id}", h.deleteEmployee)
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListEmployees(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if users == nil {
		users = []*User{}
	}
	httpx.Respond(w, http.StatusOK, users)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("invalid request body"))
		return
	}
	u, err := h.service.CreateEmployee(r.Context(), req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, u)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, apperr.Validation("invalid employee id"))
		return
	}
	var req UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("invalid request body"))
		return
	}
	u, err := h.service.UpdateEmployee(r.Context(), id, req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, u)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, apperr.Validation("invalid employee id"))
		return
	}
	if err := h.service.DeleteEmployee(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]string{"message": "employee deleted"})
}
