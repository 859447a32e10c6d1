package auth

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/mwale-dev/shopledger/internal/apperr"
	"github.com/mwale-dev/shopledger/internal/modules/user"
)

type fakeUserRepo struct {
	byUsername map[string]*user.User
}

func (f *fakeUserRepo) Create(context.Context, *user.User) error { return nil }
func (f *fakeUserRepo) GetByID(context.Context, int64) (*user.User, error) {
	return nil, sql.ErrNoRows
}
func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}
func (f *fakeUserRepo) List(context.Context) ([]*user.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(context.Context, *user.User) error   { return nil }
func (f *fakeUserRepo) Delete(context.Context, int64) error        { return nil }

const testSecret = "test-secret"

func newRepoWithUsers(t *testing.T) *fakeUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	shopID := int64(2)
	return &fakeUserRepo{byUsername: map[string]*user.User{
		"boss": {
			ID: 1, EmployeeID: "OWNER", Name: "Boss", Role: "owner",
			Username: "boss", PasswordHash: string(hash),
		},
		"clerk": {
			ID: 7, EmployeeID: "EMP007", Name: "Clerk", Role: "employee",
			ShopID: &shopID, Username: "clerk", PasswordHash: string(hash),
		},
	}}
}

func TestLoginAndAuthenticate(t *testing.T) {
	repo := newRepoWithUsers(t)
	svc := NewService(repo, testSecret)
	mw := NewMiddleware(repo, testSecret)

	token, err := svc.Login(context.Background(), "clerk", "pass123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	var gotScope Scope
	var gotUser *user.User
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotScope, _ = ScopeFrom(r.Context())
		gotUser, _ = IdentityFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotUser == nil || gotUser.Username != "clerk" {
		t.Fatalf("identity = %+v, want clerk", gotUser)
	}
	if gotScope.Owner() {
		t.Error("clerk should not have owner scope")
	}
	if gotScope.EmployeeID() != 7 || gotScope.ShopID() != 2 {
		t.Errorf("scope = (%d, %d), want (7, 2)", gotScope.EmployeeID(), gotScope.ShopID())
	}
}

func TestLoginOwnerScope(t *testing.T) {
	repo := newRepoWithUsers(t)
	svc := NewService(repo, testSecret)
	mw := NewMiddleware(repo, testSecret)

	token, err := svc.Login(context.Background(), "boss", "pass123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	var gotScope Scope
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotScope, _ = ScopeFrom(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !gotScope.Owner() {
		t.Error("boss should have owner scope")
	}
	if gotScope.EmployeeID() != 1 {
		t.Errorf("owner scope employee id = %d, want 1", gotScope.EmployeeID())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newRepoWithUsers(t)
	svc := NewService(repo, testSecret)

	for _, tt := range []struct{ username, password string }{
		{"clerk", "wrong"},
		{"nobody", "pass123"},
	} {
		_, err := svc.Login(context.Background(), tt.username, tt.password)
		if apperr.CodeOf(err) != apperr.CodeUnauthorized {
			t.Errorf("Login(%q, %q) error = %v, want unauthorized", tt.username, tt.password, err)
		}
	}
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	repo := newRepoWithUsers(t)
	mw := NewMiddleware(repo, testSecret)
	handler := mw.Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not be reached")
	}))

	for _, header := range []string{"", "Bearer garbage", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestAuthenticateRejectsTokenFromOtherSecret(t *testing.T) {
	repo := newRepoWithUsers(t)
	token, err := NewService(repo, "other-secret").Login(context.Background(), "clerk", "pass123")
	if err != nil {
		t.Fatal(err)
	}

	mw := NewMiddleware(repo, testSecret)
	handler := mw.Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not be reached")
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireOwner(t *testing.T) {
	handler := RequireOwner(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithScope(req.Context(), EmployeeScope(7, 2)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("employee scope: status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "authorization") {
		t.Errorf("body %q should carry the authorization code", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithScope(req.Context(), OwnerScope(1)))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("owner scope: status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusForbidden {
		t.Errorf("no scope: status = %d, want 403", rec.Code)
	}
}
