package user

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/mwale-dev/shopledger/internal/apperr"
)

const (
	RoleOwner    = "owner"
	RoleEmployee = "employee"
)

type service struct {
	repo Repository
}

// NewService creates a new employee directory service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListEmployees(ctx context.Context) ([]*User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

func (s *service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*User, error) {
	if req.EmployeeID == "" || req.Name == "" || req.Role == "" || req.Username == "" || req.Password == "" {
		return nil, apperr.Validation("missing required fields")
	}
	if req.Role != RoleOwner && req.Role != RoleEmployee {
		return nil, apperr.Validation("role must be %q or %q", RoleOwner, RoleEmployee)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	u := &User{
		EmployeeID:   req.EmployeeID,
		Name:         req.Name,
		ShopID:       req.ShopID,
		Role:         req.Role,
		Contact:      req.Contact,
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if apperr.IsDuplicateKey(err) {
			return nil, apperr.Conflict("user with this username or employee id already exists")
		}
		if apperr.IsForeignKey(err) {
			return nil, apperr.NotFound("shop not found")
		}
		return nil, apperr.Internal(err)
	}
	return u, nil
}

func (s *service) UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("employee not found")
		}
		return nil, apperr.Internal(err)
	}

	if req.EmployeeID != nil {
		u.EmployeeID = *req.EmployeeID
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.ShopID != nil {
		u.ShopID = req.ShopID
	}
	if req.Role != nil {
		if *req.Role != RoleOwner && *req.Role != RoleEmployee {
			return nil, apperr.Validation("role must be %q or %q", RoleOwner, RoleEmployee)
		}
		u.Role = *req.Role
	}
	if req.Contact != nil {
		u.Contact = *req.Contact
	}
	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		u.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if apperr.IsDuplicateKey(err) {
			return nil, apperr.Conflict("user with this username or employee id already exists")
		}
		return nil, apperr.Internal(err)
	}
	return u, nil
}

func (s *service) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("employee not found")
		}
		return apperr.Internal(err)
	}
	return nil
}
