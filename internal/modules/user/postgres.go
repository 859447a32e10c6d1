package user

import (
	"context"
	"database/sql"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL employee repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (employee_id, name, shop_id, role, contact, username, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		u.EmployeeID, u.Name, u.ShopID, u.Role, u.Contact, u.Username, u.PasswordHash,
	).Scan(&u.ID)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	u := &User{}
	query := `
		SELECT id, employee_id, name, shop_id, role, contact, username, password_hash
		FROM users
		WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.EmployeeID, &u.Name, &u.ShopID, &u.Role, &u.Contact, &u.Username, &u.PasswordHash,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	u := &User{}
	query := `
		SELECT id, employee_id, name, shop_id, role, contact, username, password_hash
		FROM users
		WHERE username = $1
	`
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&u.ID, &u.EmployeeID, &u.Name, &u.ShopID, &u.Role, &u.Contact, &u.Username, &u.PasswordHash,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*User, error) {
	query := `
		SELECT id, employee_id, name, shop_id, role, contact, username, password_hash
		FROM users
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(
			&u.ID, &u.EmployeeID, &u.Name, &u.ShopID, &u.Role, &u.Contact, &u.Username, &u.PasswordHash,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, u *User) error {
	query := `
		UPDATE users
		SET employee_id = $1, name = $2, shop_id = $3, role = $4, contact = $5, username = $6, password_hash = $7
		WHERE id = $8
	`
	res, err := r.db.ExecContext(ctx, query,
		u.EmployeeID, u.Name, u.ShopID, u.Role, u.Contact, u.Username, u.PasswordHash, u.ID,
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
