package catalog

import "context"

// Product is an item in the product catalog. SellingPrice is read by
// the sales ledger at checkout time and ReorderLevel drives the
// low-stock predicate; neither is ever mutated outside this module.
type Product struct {
	ID           int64   `json:"id"`
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category,omitempty"`
	CostPrice    float64 `json:"cost_price"`
	SellingPrice float64 `json:"selling_price"`
	ReorderLevel int     `json:"reorder_level"`
}

// Repository defines product catalog storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int64) error
}
