package sales

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mwale-dev/shopledger/internal/apperr"
	"github.com/mwale-dev/shopledger/internal/httpx"
	"github.com/mwale-dev/shopledger/internal/modules/auth"
	"github.com/mwale-dev/shopledger/internal/modules/catalog"
)

type service struct {
	repo     Repository
	products catalog.Repository
}

// NewService creates a new sales ledger service.
func NewService(repo Repository, products catalog.Repository) Service {
	return &service{repo: repo, products: products}
}

// newTicketID returns "#T-" plus six upper hex characters drawn from a
// random UUID. Collisions are not checked; lines of one ticket share
// the id, so the column carries no unique index anyway.
func newTicketID() string {
	u := uuid.New()
	return "#T-" + strings.ToUpper(hex.EncodeToString(u[:3]))
}

func (s *service) CreateTicket(ctx context.Context, scope auth.Scope, req CreateTicketRequest) (string, error) {
	if len(req.Items) == 0 {
		return "", apperr.Validation("missing items in request")
	}

	saleTime := time.Now().UTC()
	if req.Time != "" {
		if t, err := httpx.ParseTime(req.Time); err == nil {
			saleTime = t
		}
	}

	ticketID := newTicketID()
	lines := make([]*Sale, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return "", apperr.Validation("quantity must be a positive integer")
		}
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return "", apperr.NotFound("product with id %d not found", item.ProductID)
			}
			return "", apperr.Internal(err)
		}
		lines = append(lines, &Sale{
			TicketID:   ticketID,
			Time:       saleTime,
			ProductID:  product.ID,
			Quantity:   item.Quantity,
			Total:      product.SellingPrice * float64(item.Quantity),
			Notes:      item.Notes,
			EmployeeID: scope.EmployeeID(),
		})
	}

	if err := s.repo.CreateTicket(ctx, lines); err != nil {
		return "", apperr.Internal(err)
	}
	return ticketID, nil
}

func (s *service) ListSales(ctx context.Context, scope auth.Scope, f Filter) ([]*SaleView, error) {
	sales, err := s.repo.List(ctx, scope, f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return sales, nil
}
