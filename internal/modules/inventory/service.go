package inventory

import (
	"context"

	"github.com/mwale-dev/shopledger/internal/apperr"
	"github.com/mwale-dev/shopledger/internal/httpx"
	"github.com/mwale-dev/shopledger/internal/modules/auth"
)

// Service defines the interface for stock ledger business logic.
type Service interface {
	// StockIn adds quantity to the (shop, product) stock level and
	// returns the new level. A negative quantity is accepted as a manual
	// correction and decrements stock with no floor.
	StockIn(ctx context.Context, scope auth.Scope, req StockInRequest) (int, error)
	ListStock(ctx context.Context, scope auth.Scope, f StockFilter) ([]*RecordView, error)
	LowStockCount(ctx context.Context, scope auth.Scope) (int, error)

	CreateReceipt(ctx context.Context, req CreateReceiptRequest) (*Receipt, error)
	ListReceipts(ctx context.Context) ([]*ReceiptView, error)
}

// StockInRequest holds data for a stock-in mutation. ShopID is only
// honoured for owner scope; employee scope always targets the caller's
// home shop.
type StockInRequest struct {
	ShopID    int64 `json:"shop_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateReceiptRequest holds data for recording a goods-in receipt.
type CreateReceiptRequest struct {
	StockInID string  `json:"stock_in_id"`
	Date      string  `json:"date"`
	ShopID    int64   `json:"shop_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Supplier  *string `json:"supplier"`
	Notes     *string `json:"notes"`
}

type service struct {
	repo     Repository
	receipts ReceiptRepository
}

// NewService creates a new stock ledger service.
func NewService(repo Repository, receipts ReceiptRepository) Service {
	return &service{repo: repo, receipts: receipts}
}

func (s *service) StockIn(ctx context.Context, scope auth.Scope, req StockInRequest) (int, error) {
	if req.ProductID == 0 || req.Quantity == 0 {
		return 0, apperr.Validation("missing required fields")
	}

	shopID := req.ShopID
	if scope.Owner() {
		if shopID == 0 {
			return 0, apperr.Validation("missing required fields")
		}
	} else {
		if shopID != 0 && shopID != scope.ShopID() {
			return 0, apperr.Authorization("cannot stock in to another shop")
		}
		shopID = scope.ShopID()
		if shopID == 0 {
			return 0, apperr.Validation("account has no shop assigned")
		}
	}

	stock, err := s.repo.StockIn(ctx, shopID, req.ProductID, req.Quantity)
	if err != nil {
		if apperr.IsForeignKey(err) {
			return 0, apperr.NotFound("shop or product not found")
		}
		return 0, apperr.Internal(err)
	}
	return stock, nil
}

func (s *service) ListStock(ctx context.Context, scope auth.Scope, f StockFilter) ([]*RecordView, error) {
	records, err := s.repo.List(ctx, scope, f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return records, nil
}

func (s *service) LowStockCount(ctx context.Context, scope auth.Scope) (int, error) {
	count, err := s.repo.LowStockCount(ctx, scope)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	return count, nil
}

func (s *service) CreateReceipt(ctx context.Context, req CreateReceiptRequest) (*Receipt, error) {
	if req.StockInID == "" || req.Date == "" || req.ShopID == 0 || req.ProductID == 0 || req.Quantity == 0 {
		return nil, apperr.Validation("missing required fields")
	}
	date, err := httpx.ParseTime(req.Date)
	if err != nil {
		return nil, apperr.Validation("invalid date")
	}

	rc := &Receipt{
		StockInID: req.StockInID,
		Date:      date,
		ShopID:    req.ShopID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Supplier:  req.Supplier,
		Notes:     req.Notes,
	}
	if err := s.receipts.Create(ctx, rc); err != nil {
		if apperr.IsDuplicateKey(err) {
			return nil, apperr.Conflict("receipt with this stock_in_id already exists")
		}
		if apperr.IsForeignKey(err) {
			return nil, apperr.NotFound("shop or product not found")
		}
		return nil, apperr.Internal(err)
	}
	return rc, nil
}

func (s *service) ListReceipts(ctx context.Context) ([]*ReceiptView, error) {
	receipts, err := s.receipts.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return receipts, nil
}
