package useradmin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/louisbranch/userhub-admin/internal/platform/requestctx"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/directory"
)

const testAuthSecret = "test-secret"

func mintOperatorToken(t *testing.T, subject, role string, expiresAt time.Time) string {
	t.Helper()
	claims := operatorClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAuthSecret))
	if err != nil {
		t.Fatalf("sign operator token: %v", err)
	}
	return token
}

func authedRequest(t *testing.T, method, target, role string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, "http://example.com"+target, nil)
	req.AddCookie(&http.Cookie{
		Name:  tokenCookieName,
		Value: mintOperatorToken(t, "op-1", role, time.Now().Add(time.Hour)),
	})
	return req
}

func TestRequireAuthNilConfigGrantsAdmin(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/users/table", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	// Admin role renders the actions column.
	assertContains(t, recorder.Body.String(), "/users/user-a/delete")
}

func TestRequireAuthRedirectsWithoutToken(t *testing.T) {
	handler := NewHandler(seededDirectory(t), nil, &AuthConfig{Secret: testAuthSecret, LoginURL: "https://login.example.com"})

	req := httptest.NewRequest(http.MethodGet, "http://example.com/users", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, recorder.Code)
	}
	if got := recorder.Header().Get("Location"); got != "https://login.example.com" {
		t.Fatalf("Location = %q", got)
	}
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	handler := NewHandler(seededDirectory(t), nil, &AuthConfig{Secret: testAuthSecret, LoginURL: "https://login.example.com"})

	req := httptest.NewRequest(http.MethodGet, "http://example.com/users", nil)
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: "not-a-token"})
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, recorder.Code)
	}
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	handler := NewHandler(seededDirectory(t), nil, &AuthConfig{Secret: testAuthSecret, LoginURL: "https://login.example.com"})

	req := httptest.NewRequest(http.MethodGet, "http://example.com/users", nil)
	req.AddCookie(&http.Cookie{
		Name:  tokenCookieName,
		Value: mintOperatorToken(t, "op-1", directory.RoleAdmin, time.Now().Add(-time.Hour)),
	})
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, recorder.Code)
	}
}

func TestRequireAuthWithoutLoginURLReturns401(t *testing.T) {
	handler := NewHandler(seededDirectory(t), nil, &AuthConfig{Secret: testAuthSecret})

	req := httptest.NewRequest(http.MethodGet, "http://example.com/users", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestViewerRoleHidesManagementSurface(t *testing.T) {
	handler := NewHandler(seededDirectory(t), nil, &AuthConfig{Secret: testAuthSecret, LoginURL: "https://login.example.com"})

	req := authedRequest(t, http.MethodGet, "/users/table", directory.RoleViewer)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	body := recorder.Body.String()
	assertContains(t, body, "amy@example.com")
	assertNotContains(t, body, "/users/user-a/delete")
}

func TestViewerRoleCannotMutate(t *testing.T) {
	handler := NewHandler(seededDirectory(t), nil, &AuthConfig{Secret: testAuthSecret, LoginURL: "https://login.example.com"})

	req := authedRequest(t, http.MethodPost, "/users/user-a/delete", directory.RoleViewer)
	req.Header.Set("Origin", "http://example.com")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, recorder.Code)
	}
}

func TestAdminRoleCanMutate(t *testing.T) {
	dir := seededDirectory(t)
	handler := NewHandler(dir, nil, &AuthConfig{Secret: testAuthSecret, LoginURL: "https://login.example.com"})

	req := authedRequest(t, http.MethodPost, "/users/user-b/delete", directory.RoleAdmin)
	req.Header.Set("Origin", "http://example.com")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, recorder.Code)
	}
}

func TestParseOperatorTokenRequiresSubject(t *testing.T) {
	claims := operatorClaims{
		Role: directory.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAuthSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := parseOperatorToken(token, testAuthSecret); err == nil {
		t.Fatal("expected error for missing subject")
	}
}

func TestParseOperatorTokenRejectsWrongSecret(t *testing.T) {
	token := mintOperatorToken(t, "op-1", directory.RoleAdmin, time.Now().Add(time.Hour))
	if _, err := parseOperatorToken(token, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestIsAuthExempt(t *testing.T) {
	if !isAuthExempt("/static/app.css") {
		t.Fatal("expected static assets exempt")
	}
	if isAuthExempt("/users") {
		t.Fatal("expected users route not exempt")
	}
}

func TestSameOriginChecks(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "http://example.com/users/create", strings.NewReader(""))

	if !sameOrigin("http://example.com", req) {
		t.Fatal("expected same host to pass")
	}
	if sameOrigin("http://evil.example.net", req) {
		t.Fatal("expected cross host to fail")
	}
	if sameOrigin("null", req) {
		t.Fatal("expected null origin to fail")
	}
	if sameOrigin("https://example.com", req) {
		t.Fatal("expected scheme mismatch to fail")
	}
}

func TestCanManageReadsRoleFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/users", nil)
	if canManage(req) {
		t.Fatal("expected no role to deny management")
	}

	admin := req.WithContext(requestctx.WithOperatorRole(req.Context(), directory.RoleAdmin))
	if !canManage(admin) {
		t.Fatal("expected admin role to allow management")
	}

	viewer := req.WithContext(requestctx.WithOperatorRole(req.Context(), directory.RoleViewer))
	if canManage(viewer) {
		t.Fatal("expected viewer role to deny management")
	}
}

func TestOperatorIDReadsContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/users", nil)
	if got := operatorID(req); got != "" {
		t.Fatalf("operatorID = %q, want empty", got)
	}

	withID := req.WithContext(requestctx.WithOperatorID(req.Context(), "op-9"))
	if got := operatorID(withID); got != "op-9" {
		t.Fatalf("operatorID = %q, want %q", got, "op-9")
	}
}
