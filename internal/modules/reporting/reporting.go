package reporting

import (
	"context"
	"io"

	"github.com/mwale-dev/shopledger/internal/modules/auth"
	"github.com/mwale-dev/shopledger/internal/modules/sales"
)

// Dashboard is the scoped summary shown on login. For an employee,
// TotalSales covers only their own recorded sales while LowStockCount
// covers their whole shop's inventory; this asymmetry is deliberate.
type Dashboard struct {
	TotalSales    float64 `json:"total_sales"`
	LowStockCount int     `json:"low_stock_count"`
}

// Repository defines the aggregate queries behind the dashboard.
type Repository interface {
	// TotalSales sums sale line totals in scope: every sale for owner
	// scope, the employee's own sales otherwise. Zero when none.
	TotalSales(ctx context.Context, scope auth.Scope) (float64, error)
}

// Service defines the interface for reporting business logic.
type Service interface {
	Dashboard(ctx context.Context, scope auth.Scope) (*Dashboard, error)
	// ExportSales writes the scoped, filtered sales view as an XLSX
	// workbook.
	ExportSales(ctx context.Context, scope auth.Scope, f sales.Filter, w io.Writer) error
}
