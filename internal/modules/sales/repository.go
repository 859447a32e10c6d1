package sales

import (
	"context"

	"github.com/mwale-dev/shopledger/internal/modules/auth"
)

// Repository defines sales ledger storage.
type Repository interface {
	// CreateTicket persists every line of one checkout in a single
	// transaction; on any failure no line is written.
	CreateTicket(ctx context.Context, lines []*Sale) error
	List(ctx context.Context, scope auth.Scope, f Filter) ([]*SaleView, error)
}
