package shop

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mwale-dev/shopledger/internal/apperr"
)

// Service defines the interface for shop directory business logic.
type Service interface {
	ListShops(ctx context.Context) ([]*Shop, error)
	CreateShop(ctx context.Context, req CreateShopRequest) (*Shop, error)
	UpdateShop(ctx context.Context, id int64, req UpdateShopRequest) (*Shop, error)
	DeleteShop(ctx context.Context, id int64) error
}

// CreateShopRequest holds data for creating a shop.
type CreateShopRequest struct {
	ShopID  string `json:"shop_id"`
	Name    string `json:"name"`
	Manager string `json:"manager"`
}

// UpdateShopRequest holds a partial update; nil fields keep their
// current value.
type UpdateShopRequest struct {
	ShopID  *string `json:"shop_id"`
	Name    *string `json:"name"`
	Manager *string `json:"manager"`
}

type service struct {
	repo Repository
}

// NewService creates a new shop directory service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListShops(ctx context.Context) ([]*Shop, error) {
	shops, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return shops, nil
}

func (s *service) CreateShop(ctx context.Context, req CreateShopRequest) (*Shop, error) {
	if req.ShopID == "" || req.Name == "" {
		return nil, apperr.Validation("missing required fields")
	}
	sh := &Shop{ShopID: req.ShopID, Name: req.Name, Manager: req.Manager}
	if err := s.repo.Create(ctx, sh); err != nil {
		if apperr.IsDuplicateKey(err) {
			return nil, apperr.Conflict("shop with this id already exists")
		}
		return nil, apperr.Internal(err)
	}
	return sh, nil
}

func (s *service) UpdateShop(ctx context.Context, id int64, req UpdateShopRequest) (*Shop, error) {
	sh, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("shop not found")
		}
		return nil, apperr.Internal(err)
	}

	if req.ShopID != nil {
		sh.ShopID = *req.ShopID
	}
	if req.Name != nil {
		sh.Name = *req.Name
	}
	if req.Manager != nil {
		sh.Manager = *req.Manager
	}

	if err := s.repo.Update(ctx, sh); err != nil {
		if apperr.IsDuplicateKey(err) {
			return nil, apperr.Conflict("shop with this id already exists")
		}
		return nil, apperr.Internal(err)
	}
	return sh, nil
}

func (s *service) DeleteShop(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("shop not found")
		}
		return apperr.Internal(err)
	}
	return nil
}
