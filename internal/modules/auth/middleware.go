package auth

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/mwale-dev/shopledger/internal/apperr"
	"github.com/mwale-dev/shopledger/internal/httpx"
	"github.com/mwale-dev/shopledger/internal/modules/user"
)

type contextKey int

const (
	identityKey contextKey = iota
	scopeKey
)

// Middleware authenticates bearer tokens and resolves the caller's
// scope from the employee directory.
type Middleware struct {
	users  user.Repository
	secret []byte
}

func NewMiddleware(users user.Repository, secret string) *Middleware {
	return &Middleware{users: users, secret: []byte(secret)}
}

// Authenticate verifies the Authorization header, loads the account and
// stores identity and scope in the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			httpx.Error(w, apperr.Unauthorized("missing bearer token"))
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			httpx.Error(w, apperr.Unauthorized("invalid or expired token"))
			return
		}

		u, err := m.users.GetByUsername(r.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httpx.Error(w, apperr.Unauthorized("unknown account"))
				return
			}
			httpx.Error(w, apperr.Internal(err))
			return
		}

		ctx := WithIdentity(r.Context(), u)
		ctx = WithScope(ctx, resolveScope(u))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func resolveScope(u *user.User) Scope {
	if u.Role == string(RoleOwner) {
		return OwnerScope(u.ID)
	}
	var shopID int64
	if u.ShopID != nil {
		shopID = *u.ShopID
	}
	return EmployeeScope(u.ID, shopID)
}

// RequireOwner rejects any caller whose scope is not global.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := ScopeFrom(r.Context())
		if !ok || !scope.Owner() {
			httpx.Error(w, apperr.Authorization("owners only"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithIdentity stores the authenticated account on the context.
func WithIdentity(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, identityKey, u)
}

// WithScope stores the resolved scope on the context.
func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey, s)
}

// IdentityFrom returns the authenticated account stored by Authenticate.
func IdentityFrom(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(identityKey).(*user.User)
	return u, ok
}

// ScopeFrom returns the resolved scope stored by Authenticate.
func ScopeFrom(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(scopeKey).(Scope)
	return s, ok
}
