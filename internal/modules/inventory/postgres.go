package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mwale-dev/shopledger/internal/modules/auth"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL stock ledger repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) StockIn(ctx context.Context, shopID, productID int64, quantity int) (int, error) {
	// Single-statement upsert: safe under concurrent writers to the same
	// (shop, product) pair, no read-modify-write window.
	query := `
		INSERT INTO inventory (shop_id, product_id, current_stock)
		VALUES ($1, $2, $3)
		ON CONFLICT (shop_id, product_id)
		DO UPDATE SET current_stock = inventory.current_stock + EXCLUDED.current_stock
		RETURNING current_stock
	`
	var stock int
	if err := r.db.QueryRowContext(ctx, query, shopID, productID, quantity).Scan(&stock); err != nil {
		return 0, err
	}
	return stock, nil
}

// lowStockCond is the canonical low-stock predicate, shared by the
// listing filter and the dashboard count.
const lowStockCond = "i.current_stock <= p.reorder_level"

func (r *postgresRepository) List(ctx context.Context, scope auth.Scope, f StockFilter) ([]*RecordView, error) {
	query := `
		SELECT i.id, i.shop_id, i.product_id, p.name, i.current_stock, p.reorder_level, s.shop_id, s.name
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN shops s ON s.id = i.shop_id
	`
	var conds []string
	var args []interface{}

	if !scope.Owner() {
		args = append(args, scope.ShopID())
		conds = append(conds, fmt.Sprintf("i.shop_id = $%d", len(args)))
	} else {
		if f.ShopID != 0 {
			args = append(args, f.ShopID)
			conds = append(conds, fmt.Sprintf("i.shop_id = $%d", len(args)))
		}
		if f.ProductName != "" {
			args = append(args, "%"+f.ProductName+"%")
			conds = append(conds, fmt.Sprintf("p.name ILIKE $%d", len(args)))
		}
		if f.LowOnly {
			conds = append(conds, lowStockCond)
		}
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY i.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*RecordView
	for rows.Next() {
		v := &RecordView{}
		var shopCode, shopName string
		if err := rows.Scan(
			&v.ID, &v.ShopID, &v.ProductID, &v.ProductName, &v.CurrentStock, &v.ReorderLevel,
			&shopCode, &shopName,
		); err != nil {
			return nil, err
		}
		if scope.Owner() {
			v.ShopCode = shopCode
			v.ShopName = shopName
		}
		records = append(records, v)
	}
	return records, rows.Err()
}

func (r *postgresRepository) LowStockCount(ctx context.Context, scope auth.Scope) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE ` + lowStockCond
	var args []interface{}
	if !scope.Owner() {
		query += " AND i.shop_id = $1"
		args = append(args, scope.ShopID())
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

type receiptPostgres struct {
	db *sql.DB
}

// NewReceiptPostgresRepository creates a new PostgreSQL goods-in
// receipt repository.
func NewReceiptPostgresRepository(db *sql.DB) ReceiptRepository {
	return &receiptPostgres{db: db}
}

func (r *receiptPostgres) Create(ctx context.Context, rc *Receipt) error {
	query := `
		INSERT INTO stock_receipts (stock_in_id, date, shop_id, product_id, quantity, supplier, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		rc.StockInID, rc.Date, rc.ShopID, rc.ProductID, rc.Quantity, rc.Supplier, rc.Notes,
	).Scan(&rc.ID)
}

func (r *receiptPostgres) List(ctx context.Context) ([]*ReceiptView, error) {
	query := `
		SELECT r.id, r.stock_in_id, r.date, s.shop_id, s.name, p.name, r.quantity, r.supplier
		FROM stock_receipts r
		JOIN shops s ON s.id = r.shop_id
		JOIN products p ON p.id = r.product_id
		ORDER BY r.id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []*ReceiptView
	for rows.Next() {
		v := &ReceiptView{}
		if err := rows.Scan(
			&v.ID, &v.StockInID, &v.Date, &v.ShopCode, &v.ShopName, &v.ProductName, &v.Quantity, &v.Supplier,
		); err != nil {
			return nil, err
		}
		receipts = append(receipts, v)
	}
	return receipts, rows.Err()
}
