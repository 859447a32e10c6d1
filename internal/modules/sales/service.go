package sales

import (
	"context"

	"github.com/mwale-dev/shopledger/internal/modules/auth"
)

// Service defines the interface for sales ledger business logic.
type Service interface {
	// CreateTicket records one checkout of one or more line items
	// atomically and returns the generated ticket id.
	CreateTicket(ctx context.Context, scope auth.Scope, req CreateTicketRequest) (string, error)
	ListSales(ctx context.Context, scope auth.Scope, f Filter) ([]*SaleView, error)
}

// CreateTicketRequest holds one checkout. Time is an optional client
// timestamp; when absent or unparseable the server's UTC time is used.
type CreateTicketRequest struct {
	Items []TicketItem `json:"items"`
	Time  string       `json:"time"`
}

// TicketItem is one line of a checkout.
type TicketItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Notes     *string `json:"notes"`
}
