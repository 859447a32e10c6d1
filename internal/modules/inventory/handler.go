package inventory

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mwale-dev/shopledger/internal/apperr"
	"github.com/mwale-dev/shopledger/internal/httpx"
	"github.com/mwale-dev/shopledger/internal/modules/auth"
)

// Handler exposes the stock ledger HTTP endpoints.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterEmployeeRoutes registers the shop-scoped stock endpoints.
func (h *Handler) RegisterEmployeeRoutes(router chi.Router) {
	router.Get("/employee/stock", h.listStock)
	router.Post("/employee/stock-in", h.stockIn)
}

// RegisterOwnerRoutes registers the global stock and receipt endpoints.
func (h *Handler) RegisterOwnerRoutes(router chi.Router) {
	router.Get("/owner/inventory", h.listStock)
	router.Post("/owner/inventory/stock-in", h.stockIn)
	router.Get("/owner/stock-in", h.listReceipts)
	router.Post("/owner/stock-in", h.createReceipt)
}

func (h *Handler) stockIn(w http.ResponseWriter, r *http.Request) {
	scope, ok := auth.ScopeFrom(r.Context())
	if !ok {
		httpx.Error(w, apperr.Unauthorized("missing scope"))
		return
	}
	var req StockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("invalid request body"))
		return
	}
	stock, err := h.service.StockIn(r.Context(), scope, req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, map[string]interface{}{
		"message":       "stock added successfully",
		"current_stock": stock,
	})
}

func (h *Handler) listStock(w http.ResponseWriter, r *http.Request) {
	scope, ok := auth.ScopeFrom(r.Context())
	if !ok {
		httpx.Error(w, apperr.Unauthorized("missing scope"))
		return
	}

	var f StockFilter
	if v := r.URL.Query().Get("shop_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httpx.Error(w, apperr.Validation("invalid shop_id"))
			return
		}
		f.ShopID = id
	}
	f.ProductName = r.URL.Query().Get("product_name")
	f.LowOnly = r.URL.Query().Get("view") == "low"

	records, err := h.service.ListStock(r.Context(), scope, f)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if records == nil {
		records = []*RecordView{}
	}
	httpx.Respond(w, http.StatusOK, records)
}

func (h *Handler) createReceipt(w http.ResponseWriter, r *http.Request) {
	var req CreateReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("invalid request body"))
		return
	}
	rc, err := h.service.CreateReceipt(r.Context(), req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, rc)
}

func (h *Handler) listReceipts(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.service.ListReceipts(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if receipts == nil {
		receipts = []*ReceiptView{}
	}
	httpx.Respond(w, http.StatusOK, receipts)
}
