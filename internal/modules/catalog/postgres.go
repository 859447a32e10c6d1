package catalog

import (
	"context"
	"database/sql"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL product repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, p *Product) error {
	query := `
		INSERT INTO products (product_id, name, category, cost_price, selling_price, reorder_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		p.ProductID, p.Name, p.Category, p.CostPrice, p.SellingPrice, p.ReorderLevel,
	).Scan(&p.ID)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*Product, error) {
	p := &Product{}
	query := `
		SELECT id, product_id, name, category, cost_price, selling_price, reorder_level
		FROM products
		WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.ProductID, &p.Name, &p.Category, &p.CostPrice, &p.SellingPrice, &p.ReorderLevel,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*Product, error) {
	query := `
		SELECT id, product_id, name, category, cost_price, selling_price, reorder_level
		FROM products
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(
			&p.ID, &p.ProductID, &p.Name, &p.Category, &p.CostPrice, &p.SellingPrice, &p.ReorderLevel,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, p *Product) error {
	query := `
		UPDATE products
		SET product_id = $1, name = $2, category = $3, cost_price = $4, selling_price = $5, reorder_level = $6
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		p.ProductID, p.Name, p.Category, p.CostPrice, p.SellingPrice, p.ReorderLevel, p.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
