package sales

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mwale-dev/shopledger/internal/apperr"
	"github.com/mwale-dev/shopledger/internal/modules/auth"
)

type fakeService struct {
	ticketID string
	err      error
	lastReq  CreateTicketRequest
	rows     []*SaleView
}

func (f *fakeService) CreateTicket(_ context.Context, _ auth.Scope, req CreateTicketRequest) (string, error) {
	f.lastReq = req
	return f.ticketID, f.err
}

func (f *fakeService) ListSales(context.Context, auth.Scope, Filter) ([]*SaleView, error) {
	return f.rows, f.err
}

func newTestRouter(svc Service) *chi.Mux {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithScope(r.Context(), auth.EmployeeScope(7, 2))))
		})
	})
	NewHandler(svc).RegisterEmployeeRoutes(router)
	return router
}

func TestCreateTicketHandler(t *testing.T) {
	svc := &fakeService{ticketID: "#T-AB12CD"}
	router := newTestRouter(svc)

	body := `{"items": [{"product_id": 1, "quantity": 3}], "time": "2025-03-10T14:00:00"}`
	req := httptest.NewRequest(http.MethodPost, "/employee/sales", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["ticket_id"] != "#T-AB12CD" {
		t.Errorf("ticket_id = %q", resp["ticket_id"])
	}
	if len(svc.lastReq.Items) != 1 || svc.lastReq.Items[0].Quantity != 3 {
		t.Errorf("service received %+v", svc.lastReq)
	}
}

func TestCreateTicketHandlerRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodPost, "/employee/sales", strings.NewReader(`{"items": "nope"`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateTicketHandlerMapsServiceErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{apperr.Validation("missing items in request"), http.StatusBadRequest},
		{apperr.NotFound("product with id 999 not found"), http.StatusNotFound},
		{apperr.Internal(nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		router := newTestRouter(&fakeService{err: tt.err})
		req := httptest.NewRequest(http.MethodPost, "/employee/sales", strings.NewReader(`{"items": []}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tt.status {
			t.Errorf("error %v: status = %d, want %d", tt.err, rec.Code, tt.status)
		}
	}
}

func TestCreateTicketHandlerRequiresScope(t *testing.T) {
	router := chi.NewRouter()
	NewHandler(&fakeService{}).RegisterEmployeeRoutes(router)

	req := httptest.NewRequest(http.MethodPost, "/employee/sales", strings.NewReader(`{"items": []}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestListSalesHandlerReturnsEmptyArray(t *testing.T) {
	router := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/employee/sales", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestFilterFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("date_from", "2025-01-01")
	q.Set("date_to", "2025-01-31T23:59:59")
	q.Set("product_name", "meal")
	q.Set("employee_name", "cle")
	q.Set("shop_id", "2")

	f, err := FilterFromQuery(q)
	if err != nil {
		t.Fatalf("FilterFromQuery: %v", err)
	}
	if f.DateFrom == nil || !f.DateFrom.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DateFrom = %v", f.DateFrom)
	}
	if f.DateTo == nil || !f.DateTo.Equal(time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("DateTo = %v", f.DateTo)
	}
	if f.ProductName != "meal" || f.EmployeeName != "cle" || f.ShopID != 2 {
		t.Errorf("filter = %+v", f)
	}
}

func TestFilterFromQueryRejectsBadValues(t *testing.T) {
	for _, tt := range []struct{ key, value string }{
		{"date_from", "soon"},
		{"date_to", "later"},
		{"shop_id", "two"},
	} {
		q := url.Values{}
		q.Set(tt.key, tt.value)
		if _, err := FilterFromQuery(q); apperr.CodeOf(err) != apperr.CodeValidation {
			t.Errorf("%s=%s: error = %v, want validation", tt.key, tt.value, err)
		}
	}
}
