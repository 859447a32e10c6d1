package user

import "context"

// Service defines the interface for employee directory business logic.
type Service interface {
	ListEmployees(ctx context.Context) ([]*User, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*User, error)
	UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) (*User, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

// CreateEmployeeRequest holds data for creating an employee account.
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	ShopID     *int64 `json:"shop_id"`
	Role       string `json:"role"`
	Contact    string `json:"contact"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

// UpdateEmployeeRequest holds a partial update; nil fields keep their
// current value.
type UpdateEmployeeRequest struct {
	EmployeeID *string `json:"employee_id"`
	Name       *string `json:"name"`
	ShopID     *int64  `json:"shop_id"`
	Role       *string `json:"role"`
	Contact    *string `json:"contact"`
	Username   *string `json:"username"`
	Password   *string `json:"password"`
}
