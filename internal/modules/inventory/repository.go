package inventory

import (
	"context"

	"github.com/mwale-dev/shopledger/internal/modules/auth"
)

// Repository defines stock ledger storage.
type Repository interface {
	// StockIn atomically adds quantity to the (shop, product) record,
	// creating it if absent, and returns the resulting stock level.
	StockIn(ctx context.Context, shopID, productID int64, quantity int) (int, error)
	List(ctx context.Context, scope auth.Scope, f StockFilter) ([]*RecordView, error)
	LowStockCount(ctx context.Context, scope auth.Scope) (int, error)
}

// ReceiptRepository defines goods-in audit storage.
type ReceiptRepository interface {
	Create(ctx context.Context, rc *Receipt) error
	List(ctx context.Context) ([]*ReceiptView, error)
}
