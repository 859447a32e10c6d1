package sales

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mwale-dev/shopledger/internal/apperr"
	"github.com/mwale-dev/shopledger/internal/httpx"
	"github.com/mwale-dev/shopledger/internal/modules/auth"
)

// Handler exposes the sales ledger HTTP endpoints.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterEmployeeRoutes registers checkout recording and the caller's
// own sales history.
func (h *Handler) RegisterEmployeeRoutes(router chi.Router) {
	router.Get("/employee/sales", h.listSales)
	router.Post("/employee/sales", h.createTicket)
}

// RegisterOwnerRoutes registers the global sales view.
func (h *Handler) RegisterOwnerRoutes(router chi.Router) {
	router.Get("/owner/sales", h.listSales)
}

func (h *Handler) createTicket(w http.ResponseWriter, r *http.Request) {
	scope, ok := auth.ScopeFrom(r.Context())
	if !ok {
		httpx.Error(w, apperr.Unauthorized("missing scope"))
		return
	}
	var req CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("invalid request body"))
		return
	}
	ticketID, err := h.service.CreateTicket(r.Context(), scope, req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, map[string]string{
		"message":   "sale created successfully",
		"ticket_id": ticketID,
	})
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	scope, ok := auth.ScopeFrom(r.Context())
	if !ok {
		httpx.Error(w, apperr.Unauthorized("missing scope"))
		return
	}
	f, err := FilterFromQuery(r.URL.Query())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	sales, err := h.service.ListSales(r.Context(), scope, f)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if sales == nil {
		sales = []*SaleView{}
	}
	httpx.Respond(w, http.StatusOK, sales)
}

// FilterFromQuery builds a sales filter from recognised query
// parameters; anything else is ignored.
func FilterFromQuery(q url.Values) (Filter, error) {
	var f Filter
	if v := q.Get("date_from"); v != "" {
		t, err := httpx.ParseTime(v)
		if err != nil {
			return f, apperr.Validation("invalid date_from")
		}
		f.DateFrom = &t
	}
	if v := q.Get("date_to"); v != "" {
		t, err := httpx.ParseTime(v)
		if err != nil {
			return f, apperr.Validation("invalid date_to")
		}
		f.DateTo = &t
	}
	f.ProductName = q.Get("product_name")
	f.EmployeeName = q.Get("employee_name")
	if v := q.Get("shop_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, apperr.Validation("invalid shop_id")
		}
		f.ShopID = id
	}
	return f, nil
}
