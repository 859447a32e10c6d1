package shop

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mwale-dev/shopledger/internal/apperr"
	"github.com/mwale-dev/shopledger/internal/httpx"
)

// Handler exposes the shop directory HTTP endpoints (owner only).
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/owner/shops", h.listShops)
	router.Post("/owner/shops", h.createShop)
	router.Put("/owner/shops/{id}", h.updateShop)
	router.Delete("/owner/shops/{id}", h.deleteShop)
}

func (h *Handler) listShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.service.ListShops(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if shops == nil {
		shops = []*Shop{}
	}
	httpx.Respond(w, http.StatusOK, shops)
}

func (h *Handler) createShop(w http.ResponseWriter, r *http.Request) {
	var req CreateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("invalid request body"))
		return
	}
	sh, err := h.service.CreateShop(r.Context(), req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, sh)
}

func (h *Handler) updateShop(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, apperr.Validation("invalid shop id"))
		return
	}
	var req UpdateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("invalid request body"))
		return
	}
	sh, err := h.service.UpdateShop(r.Context(), id, req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, sh)
}

func (h *Handler) deleteShop(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, apperr.Validation("invalid shop id"))
		return
	}
	if err := h.service.DeleteShop(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]string{"message": "shop deleted"})
}
