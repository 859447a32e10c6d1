package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mwale-dev/shopledger/internal/apperr"
	"github.com/mwale-dev/shopledger/internal/httpx"
)

// Handler exposes the product catalog HTTP endpoints.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the product listing available to any
// authenticated caller.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/products", h.listProducts)
}

// RegisterOwnerRoutes registers the owner-only catalog mutations.
func (h *Handler) RegisterOwnerRoutes(router chi.Router) {
	router.Get("/owner/products", h.listProducts)
	router.Post("/owner/products", h.createProduct)
	router.Put("/owner/products/{id}", h.updateProduct)
	router.Delete("/owner/products/{id}", h.deleteProduct)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if products == nil {
		products = []*Product{}
	}
	httpx.Respond(w, http.StatusOK, products)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("invalid request body"))
		return
	}
	p, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, apperr.Validation("invalid product id"))
		return
	}
	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("invalid request body"))
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), id, req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, apperr.Validation("invalid product id"))
		return
	}
	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]string{"message": "product deleted"})
}
