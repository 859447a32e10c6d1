package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

// Service defines the interface for authentication business logic.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Claims is the JWT payload: the subject is the username, plus the
// account role for scope resolution.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
