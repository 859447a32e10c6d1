package user

import "context"

// User is an account in the employee directory. The owner account is a
// User with role "owner" and no home shop.
type User struct {
	ID           int64  `json:"id"`
	EmployeeID   string `json:"employee_id"`
	Name         string `json:"name"`
	ShopID       *int64 `json:"shop_id"`
	Role         string `json:"role"`
	Contact      string `json:"contact,omitempty"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Repository defines employee directory storage.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
}
