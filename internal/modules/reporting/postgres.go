package reporting

import (
	"context"
	"database/sql"

	"github.com/mwale-dev/shopledger/internal/modules/auth"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL reporting repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) TotalSales(ctx context.Context, scope auth.Scope) (float64, error) {
	query := `SELECT COALESCE(SUM(total), 0) FROM sales`
	var args []interface{}
	if !scope.Owner() {
		query += ` WHERE employee_id = $1`
		args = append(args, scope.EmployeeID())
	}

	var total float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
