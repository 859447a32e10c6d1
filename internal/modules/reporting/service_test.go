package reporting

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mwale-dev/shopledger/internal/modules/auth"
	"github.com/mwale-dev/shopledger/internal/modules/inventory"
	"github.com/mwale-dev/shopledger/internal/modules/sales"
)

type fakeTotalsRepo struct {
	totals map[int64]float64
	global float64
}

func (f *fakeTotalsRepo) TotalSales(_ context.Context, scope auth.Scope) (float64, error) {
	if scope.Owner() {
		return f.global, nil
	}
	return f.totals[scope.EmployeeID()], nil
}

type fakeStockRepo struct {
	perShop map[int64]int
	global  int
}

func (f *fakeStockRepo) StockIn(context.Context, int64, int64, int) (int, error) { return 0, nil }
func (f *fakeStockRepo) List(context.Context, auth.Scope, inventory.StockFilter) ([]*inventory.RecordView, error) {
	return nil, nil
}
func (f *fakeStockRepo) LowStockCount(_ context.Context, scope auth.Scope) (int, error) {
	if scope.Owner() {
		return f.global, nil
	}
	return f.perShop[scope.ShopID()], nil
}

type fakeSalesRepo struct {
	rows []*sales.SaleView
}

func (f *fakeSalesRepo) CreateTicket(context.Context, []*sales.Sale) error { return nil }
func (f *fakeSalesRepo) List(context.Context, auth.Scope, sales.Filter) ([]*sales.SaleView, error) {
	return f.rows, nil
}

func TestDashboardOwnerIsGlobal(t *testing.T) {
	svc := NewService(
		&fakeTotalsRepo{global: 1250, totals: map[int64]float64{7: 300}},
		&fakeStockRepo{global: 9, perShop: map[int64]int{2: 3}},
		&fakeSalesRepo{},
	)

	d, err := svc.Dashboard(context.Background(), auth.OwnerScope(1))
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if d.TotalSales != 1250 || d.LowStockCount != 9 {
		t.Errorf("dashboard = %+v, want total 1250, low stock 9", d)
	}
}

func TestDashboardEmployeeAsymmetry(t *testing.T) {
	// Own sales only, but the whole shop's low stock.
	svc := NewService(
		&fakeTotalsRepo{global: 1250, totals: map[int64]float64{7: 300, 8: 500}},
		&fakeStockRepo{global: 9, perShop: map[int64]int{2: 3}},
		&fakeSalesRepo{},
	)

	d, err := svc.Dashboard(context.Background(), auth.EmployeeScope(7, 2))
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if d.TotalSales != 300 {
		t.Errorf("total sales = %v, want the employee's own 300", d.TotalSales)
	}
	if d.LowStockCount != 3 {
		t.Errorf("low stock = %d, want the shop's 3", d.LowStockCount)
	}
}

func TestExportSalesProducesReadableWorkbook(t *testing.T) {
	svc := NewService(
		&fakeTotalsRepo{},
		&fakeStockRepo{},
		&fakeSalesRepo{rows: []*sales.SaleView{
			{
				TicketID: "#T-AB12CD", Time: time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
				ProductName: "Mealie Meal", Quantity: 3, Total: 150,
				EmployeeName: "Clerk", ShopName: "Kabwata",
			},
			{
				TicketID: "#T-AB12CD", Time: time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
				ProductName: "Cooking Oil", Quantity: 1, Total: 120,
				EmployeeName: "Clerk", ShopName: "Kabwata",
			},
		}},
	)

	var buf bytes.Buffer
	if err := svc.ExportSales(context.Background(), auth.OwnerScope(1), sales.Filter{}, &buf); err != nil {
		t.Fatalf("ExportSales: %v", err)
	}

	file, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("export is not a readable workbook: %v", err)
	}
	defer file.Close()

	sheet := file.GetSheetName(file.GetActiveSheetIndex())
	rows, err := file.GetRows(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("workbook has %d rows, want header + 2 lines", len(rows))
	}
	if rows[0][0] != "ticket_id" {
		t.Errorf("header starts with %q, want ticket_id", rows[0][0])
	}
	if rows[1][0] != "#T-AB12CD" || rows[1][2] != "Mealie Meal" {
		t.Errorf("unexpected first data row %v", rows[1])
	}
}
