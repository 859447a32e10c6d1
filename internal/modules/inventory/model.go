package inventory

import "time"

// Record is the running stock level for one (shop, product) pair.
// Exactly one record exists per pair; stock-in upserts it.
type Record struct {
	ID           int64 `json:"id"`
	ShopID       int64 `json:"shop_id"`
	ProductID    int64 `json:"product_id"`
	CurrentStock int   `json:"current_stock"`
}

// RecordView is a stock record joined with its product (and, for owner
// scope, shop) directory data.
type RecordView struct {
	ID           int64  `json:"id"`
	ShopID       int64  `json:"shop_id"`
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	CurrentStock int    `json:"current_stock"`
	ReorderLevel int    `json:"reorder_level"`
	ShopCode     string `json:"shop_code,omitempty"`
	ShopName     string `json:"shop_name,omitempty"`
}

// StockFilter narrows owner-scope stock listings. Zero values mean the
// field is not applied; conditions compound with AND.
type StockFilter struct {
	ShopID      int64
	ProductName string
	LowOnly     bool
}

// Receipt is an append-only goods-in record. It is an audit trail only
// and never updates the running stock level.
type Receipt struct {
	ID        int64     `json:"id"`
	StockInID string    `json:"stock_in_id"`
	Date      time.Time `json:"date"`
	ShopID    int64     `json:"shop_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Supplier  *string   `json:"supplier,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
}

// ReceiptView is a receipt joined with shop and product names.
type ReceiptView struct {
	ID          int64     `json:"id"`
	StockInID   string    `json:"stock_in_id"`
	Date        time.Time `json:"date"`
	ShopCode    string    `json:"shop_code"`
	ShopName    string    `json:"shop_name"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Supplier    *string   `json:"supplier,omitempty"`
}
