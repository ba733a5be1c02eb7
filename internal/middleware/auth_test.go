package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/forgo/biblio/internal/model"
	"github.com/forgo/biblio/pkg/jwt"
)

func newTestJWTService(t *testing.T) *jwt.Service {
	t.Helper()
	svc, err := jwt.NewService(jwt.Config{
		Secret:         "middleware-test-secret",
		Issuer:         "test-issuer",
		ExpirationMins: 15,
	})
	if err != nil {
		t.Fatalf("failed to create JWT service: %v", err)
	}
	return svc
}

func signTestToken(t *testing.T, svc *jwt.Service, memberID string, role model.MemberRole) string {
	t.Helper()
	token, err := svc.Sign(jwt.Claims{
		Subject:  memberID,
		MemberID: memberID,
		Username: "tester",
		Role:     string(role),
	})
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

// tokenValidator adapts a jwt.Service to the AuthService interface
type tokenValidator struct {
	svc *jwt.Service
}

func (v tokenValidator) ValidateToken(token string) (*jwt.Claims, error) {
	return v.svc.Validate(token)
}

// ============================================================================
// Auth Tests
// ============================================================================

func TestAuth_ValidToken_SetsContext(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)
	token := signTestToken(t, svc, "member:1", model.MemberRoleLibrarian)

	var gotID string
	var gotRole model.MemberRole
	handler := Auth(tokenValidator{svc})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetMemberID(r.Context())
		gotRole = GetRole(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if gotID != "member:1" {
		t.Errorf("expected member:1 in context, got %q", gotID)
	}
	if gotRole != model.MemberRoleLibrarian {
		t.Errorf("expected librarian role in context, got %q", gotRole)
	}
}

func TestAuth_MissingHeader_Returns401(t *testing.T) {
	t.Parallel()

	handler := Auth(tokenValidator{newTestJWTService(t)})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestAuth_MalformedHeader_Returns401(t *testing.T) {
	t.Parallel()

	handler := Auth(tokenValidator{newTestJWTService(t)})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Token abc123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestAuth_TamperedToken_Returns401(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)
	token := signTestToken(t, svc, "member:1", model.MemberRoleUser)
	tampered := token[:len(token)-2] + "xx"

	handler := Auth(tokenValidator{svc})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tampered)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "invalid token") {
		t.Errorf("expected invalid token detail, got %q", rr.Body.String())
	}
}

// ============================================================================
// RequireRole Tests
// ============================================================================

func TestRequireRole_AllowedRolePasses(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)
	token := signTestToken(t, svc, "member:1", model.MemberRoleAdmin)

	handler := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		Auth(tokenValidator{svc}),
		RequireStaff(),
	)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200 for admin, got %d", rr.Code)
	}
}

func TestRequireRole_DisallowedRoleReturns403(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)
	token := signTestToken(t, svc, "member:1", model.MemberRoleUser)

	handler := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not be reached")
		}),
		Auth(tokenValidator{svc}),
		RequireStaff(),
	)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status 403 for user role, got %d", rr.Code)
	}
}

func TestRequireRole_WithoutAuthReturns401(t *testing.T) {
	t.Parallel()

	handler := RequireStaff()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 without auth context, got %d", rr.Code)
	}
}
