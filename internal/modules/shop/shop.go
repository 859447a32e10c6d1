package shop

import "context"

// Shop is a retail location in the directory.
type Shop struct {
	ID      int64  `json:"id"`
	ShopID  string `json:"shop_id"`
	Name    string `json:"name"`
	Manager string `json:"manager,omitempty"`
}

// Repository defines shop directory storage.
type Repository interface {
	Create(ctx context.Context, s *Shop) error
	GetByID(ctx context.Context, id int64) (*Shop, error)
	List(ctx context.Context) ([]*Shop, error)
	Update(ctx context.Context, s *Shop) error
	Delete(ctx context.Context, id int64) error
}
