package sales

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

// NewPostgresRepository creates a new PostgreSQL sales ledger repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateTicket(ctx context.Context, lines []*Sale) error {
	// Serializable so a concurrent dashboard read never sees a ticket
	// with only some of its lines committed.
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO sales (ticket_id, time, product_id, quantity, total, notes, employee_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	for _, line := range lines {
		if err := tx.QueryRowContext(ctx, query,
			line.TicketID, line.Time, line.ProductID, line.Quantity, line.Total, line.Notes, line.EmployeeID,
		).Scan(&line.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *postgresRepository) List(ctx context.Context, scope auth.Scope, f Filter) ([]*SaleView, error) {
	query := `
		SELECT sl.id, sl.ticket_id, sl.time, sl.product_id, p.name, sl.quantity, sl.total, sl.notes,
		       u.name, sh.shop_id, sh.name
		FROM sales sl
		JOIN products p ON p.id = sl.product_id
		JOIN users u ON u.id = sl.employee_id
		LEFT JOIN shops sh ON sh.id = u.shop_id
	`
	var conds []string
	var args []interface{}

	if !scope.Owner() {
		args = append(args, scope.EmployeeID())
		conds = append(conds, fmt.Sprintf("sl.employee_id = $%d", len(args)))
	}
	if f.DateFrom != nil {
		args = append(args, *f.DateFrom)
		conds = append(conds, fmt.Sprintf("sl.time >= $%d", len(args)))
	}
	if f.DateTo != nil {
		args = append(args, *f.DateTo)
		conds = append(conds, fmt.Sprintf("sl.time <= $%d", len(args)))
	}
	if f.ProductName != "" {
		args = append(args, "%"+f.ProductName+"%")
		conds = append(conds, fmt.Sprintf("p.name ILIKE $%d", len(args)))
	}
	if scope.Owner() {
		if f.EmployeeName != "" {
			args = append(args, "%"+f.EmployeeName+"%")
			conds = append(conds, fmt.Sprintf("u.name ILIKE $%d", len(args)))
		}
		if f.ShopID != 0 {
			args = append(args, f.ShopID)
			conds = append(conds, fmt.Sprintf("u.shop_id = $%d", len(args)))
		}
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY sl.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*SaleView
	for rows.Next() {
		v := &SaleView{}
		var employeeName string
		var shopCode, shopName sql.NullString
		if err := rows.Scan(
			&v.ID, &v.TicketID, &v.Time, &v.ProductID, &v.ProductName, &v.Quantity, &v.Total, &v.Notes,
			&employeeName, &shopCode, &shopName,
		); err != nil {
			return nil, err
		}
		if scope.Owner() {
			v.EmployeeName = employeeName
			v.ShopCode = shopCode.String
			v.ShopName = shopName.String
		}
		sales = append(sales, v)
	}
	return sales, rows.Err()
}
