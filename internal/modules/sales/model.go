package sales

import "time"

// Sale is one immutable line of a checkout ticket. Total is computed
// from the product's selling price at write time and never recomputed.
type Sale struct {
	ID         int64     `json:"id"`
	TicketID   string    `json:"ticket_id"`
	Time       time.Time `json:"time"`
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"`
	Total      float64   `json:"total"`
	Notes      *string   `json:"notes,omitempty"`
	EmployeeID int64     `json:"employee_id"`
}

// SaleView is a sale line joined with directory data. Employee and shop
// fields are only populated for owner scope.
type SaleView struct {
	ID           int64     `json:"id"`
	TicketID     string    `json:"ticket_id"`
	Time         time.Time `json:"time"`
	ProductID    int64     `json:"product_id"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	Total        float64   `json:"total"`
	Notes        *string   `json:"notes,omitempty"`
	EmployeeName string    `json:"employee_name,omitempty"`
	ShopCode     string    `json:"shop_code,omitempty"`
	ShopName     string    `json:"shop_name,omitempty"`
}

// Filter narrows sale listings. Zero values mean the field is not
// applied; conditions compound with AND. EmployeeName and ShopID are
// honoured for owner scope only.
type Filter struct {
	DateFrom     *time.Time
	DateTo       *time.Time
	ProductName  string
	EmployeeName string
	ShopID       int64
}
