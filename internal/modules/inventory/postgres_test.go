package inventory

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mwale-dev/shopledger/internal/modules/auth"
)

func TestStockInUpsertsAndReturnsNewLevel(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO inventory").
		WithArgs(int64(1), int64(7), 10).
		WillReturnRows(sqlmock.NewRows([]string{"current_stock"}).AddRow(10))
	mock.ExpectQuery("INSERT INTO inventory").
		WithArgs(int64(1), int64(7), 5).
		WillReturnRows(sqlmock.NewRows([]string{"current_stock"}).AddRow(15))

	stock, err := repo.StockIn(context.Background(), 1, 7, 10)
	if err != nil {
		t.Fatalf("StockIn: %v", err)
	}
	if stock != 10 {
		t.Errorf("first stock-in = %d, want 10", stock)
	}

	stock, err = repo.StockIn(context.Background(), 1, 7, 5)
	if err != nil {
		t.Fatalf("StockIn: %v", err)
	}
	if stock != 15 {
		t.Errorf("second stock-in = %d, want 15", stock)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestLowStockCountScopesEmployeeToHomeShop(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.LowStockCount(context.Background(), auth.EmployeeScope(7, 2))
	if err != nil {
		t.Fatalf("LowStockCount: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestLowStockCountOwnerIsGlobal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	count, err := repo.LowStockCount(context.Background(), auth.OwnerScope(1))
	if err != nil {
		t.Fatalf("LowStockCount: %v", err)
	}
	if count != 9 {
		t.Errorf("count = %d, want 9", count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func stockColumns() []string {
	return []string{
		"id", "shop_id", "product_id", "p.name", "current_stock",
		"reorder_level", "s.shop_id", "s.name",
	}
}

func TestListForcesEmployeeShop(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM inventory").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(stockColumns()).
			AddRow(1, 2, 7, "Mealie Meal", 4, 10, "SHP02", "Kabwata"))

	// Employee filters are ignored; the scope's shop wins.
	views, err := repo.List(context.Background(), auth.EmployeeScope(9, 2), StockFilter{ShopID: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d rows, want 1", len(views))
	}
	if views[0].ShopCode != "" || views[0].ShopName != "" {
		t.Errorf("employee view should not include shop join, got %+v", views[0])
	}
	if views[0].ReorderLevel != 10 || views[0].CurrentStock != 4 {
		t.Errorf("unexpected stock view %+v", views[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestListOwnerAppliesFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM inventory").
		WithArgs(int64(1), "%oil%").
		WillReturnRows(sqlmock.NewRows(stockColumns()).
			AddRow(3, 1, 8, "Cooking Oil", 2, 5, "SHP01", "Town Centre"))

	views, err := repo.List(context.Background(), auth.OwnerScope(1), StockFilter{
		ShopID:      1,
		ProductName: "oil",
		LowOnly:     true,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d rows, want 1", len(views))
	}
	if views[0].ShopCode != "SHP01" || views[0].ShopName != "Town Centre" {
		t.Errorf("owner view should include shop join, got %+v", views[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
