package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mwale-dev/shopledger/internal/apperr"
)

// Service defines the interface for product catalog business logic.
type Service interface {
	ListProducts(ctx context.Context) ([]*Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, req UpdateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// CreateProductRequest holds data for creating a product.
type CreateProductRequest struct {
	ProductID    string   `json:"product_id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	CostPrice    *float64 `json:"cost_price"`
	SellingPrice *float64 `json:"selling_price"`
	ReorderLevel *int     `json:"reorder_level"`
}

// UpdateProductRequest holds a partial update; nil fields keep their
// current value.
type UpdateProductRequest struct {
	ProductID    *string  `json:"product_id"`
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	CostPrice    *float64 `json:"cost_price"`
	SellingPrice *float64 `json:"selling_price"`
	ReorderLevel *int     `json:"reorder_level"`
}

type service struct {
	repo Repository
}

// NewService creates a new product catalog service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return products, nil
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.ProductID == "" || req.Name == "" || req.CostPrice == nil || req.SellingPrice == nil || req.ReorderLevel == nil {
		return nil, apperr.Validation("missing required fields")
	}
	if *req.ReorderLevel < 0 {
		return nil, apperr.Validation("reorder_level must not be negative")
	}

	p := &Product{
		ProductID:    req.ProductID,
		Name:         req.Name,
		Category:     req.Category,
		CostPrice:    *req.CostPrice,
		SellingPrice: *req.SellingPrice,
		ReorderLevel: *req.ReorderLevel,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if apperr.IsDuplicateKey(err) {
			return nil, apperr.Conflict("product with this id already exists")
		}
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id int64, req UpdateProductRequest) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, apperr.Internal(err)
	}

	if req.ProductID != nil {
		p.ProductID = *req.ProductID
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.CostPrice != nil {
		p.CostPrice = *req.CostPrice
	}
	if req.SellingPrice != nil {
		p.SellingPrice = *req.SellingPrice
	}
	if req.ReorderLevel != nil {
		if *req.ReorderLevel < 0 {
			return nil, apperr.Validation("reorder_level must not be negative")
		}
		p.ReorderLevel = *req.ReorderLevel
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if apperr.IsDuplicateKey(err) {
			return nil, apperr.Conflict("product with this id already exists")
		}
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("product not found")
		}
		return apperr.Internal(err)
	}
	return nil
}
