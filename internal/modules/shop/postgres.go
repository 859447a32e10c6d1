package shop

import (
	"context"
	"database/sql"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL shop repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, s *Shop) error {
	query := `
		INSERT INTO shops (shop_id, name, manager)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query, s.ShopID, s.Name, s.Manager).Scan(&s.ID)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*Shop, error) {
	s := &Shop{}
	query := `SELECT id, shop_id, name, manager FROM shops WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.ShopID, &s.Name, &s.Manager)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*Shop, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, shop_id, name, manager FROM shops ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []*Shop
	for rows.Next() {
		s := &Shop{}
		if err := rows.Scan(&s.ID, &s.ShopID, &s.Name, &s.Manager); err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}
	return shops, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, s *Shop) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE shops SET shop_id = $1, name = $2, manager = $3 WHERE id = $4`,
		s.ShopID, s.Name, s.Manager, s.ID,
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
