package reporting

import (
	"context"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mwale-dev/shopledger/internal/apperr"
	"github.com/mwale-dev/shopledger/internal/modules/auth"
	"github.com/mwale-dev/shopledger/internal/modules/inventory"
	"github.com/mwale-dev/shopledger/internal/modules/sales"
)

type service struct {
	repo      Repository
	stock     inventory.Repository
	salesRepo sales.Repository
}

// NewService creates a new reporting service.
func NewService(repo Repository, stock inventory.Repository, salesRepo sales.Repository) Service {
	return &service{repo: repo, stock: stock, salesRepo: salesRepo}
}

func (s *service) Dashboard(ctx context.Context, scope auth.Scope) (*Dashboard, error) {
	total, err := s.repo.TotalSales(ctx, scope)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	lowStock, err := s.stock.LowStockCount(ctx, scope)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &Dashboard{TotalSales: total, LowStockCount: lowStock}, nil
}

var exportHeader = []interface{}{
	"ticket_id", "time", "product", "quantity", "total", "employee", "shop",
}

func (s *service) ExportSales(ctx context.Context, scope auth.Scope, f sales.Filter, w io.Writer) error {
	rows, err := s.salesRepo.List(ctx, scope, f)
	if err != nil {
		return apperr.Internal(err)
	}

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()
	sheet := file.GetSheetName(file.GetActiveSheetIndex())

	if err := file.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return apperr.Internal(err)
	}
	for i, sale := range rows {
		row := []interface{}{
			sale.TicketID,
			sale.Time.Format("2006-01-02 15:04:05"),
			sale.ProductName,
			sale.Quantity,
			sale.Total,
			sale.EmployeeName,
			sale.ShopName,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperr.Internal(err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return apperr.Internal(err)
		}
	}

	if err := file.Write(w); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
