package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/mwale-dev/shopledger/internal/apperr"
	"github.com/mwale-dev/shopledger/internal/modules/user"
)

const tokenTTL = 24 * time.Hour

type service struct {
	users  user.Repository
	secret []byte
}

// NewService creates a new auth service signing tokens with secret.
func NewService(users user.Repository, secret string) Service {
	return &service{users: users, secret: []byte(secret)}
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperr.Unauthorized("bad username or password")
		}
		return "", apperr.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", apperr.Unauthorized("bad username or password")
	}

	claims := &Claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return token, nil
}
