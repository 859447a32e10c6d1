package reporting

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mwale-dev/shopledger/internal/apperr"
	"github.com/mwale-dev/shopledger/internal/httpx"
	"github.com/mwale-dev/shopledger/internal/modules/auth"
	"github.com/mwale-dev/shopledger/internal/modules/sales"
)

// Handler exposes the reporting HTTP endpoints.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterEmployeeRoutes registers the scoped dashboard.
func (h *Handler) RegisterEmployeeRoutes(router chi.Router) {
	router.Get("/employee/dashboard", h.dashboard)
}

// RegisterOwnerRoutes registers the global dashboard and sales export.
func (h *Handler) RegisterOwnerRoutes(router chi.Router) {
	router.Get("/owner/dashboard", h.dashboard)
	router.Get("/owner/sales/export", h.exportSales)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	scope, ok := auth.ScopeFrom(r.Context())
	if !ok {
		httpx.Error(w, apperr.Unauthorized("missing scope"))
		return
	}
	d, err := h.service.Dashboard(r.Context(), scope)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, d)
}

func (h *Handler) exportSales(w http.ResponseWriter, r *http.Request) {
	scope, ok := auth.ScopeFrom(r.Context())
	if !ok {
		httpx.Error(w, apperr.Unauthorized("missing scope"))
		return
	}
	f, err := sales.FilterFromQuery(r.URL.Query())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	filename := "sales-" + time.Now().UTC().Format("20060102-150405") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := h.service.ExportSales(r.Context(), scope, f, w); err != nil {
		// Headers are already written; the broken download is the best
		// signal left to the client.
		return
	}
}
