package useradmin

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/louisbranch/userhub-admin/internal/platform/requestctx"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/directory"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/routepath"
)

// tokenCookieName is the domain-scoped cookie set by the operator login flow.
const tokenCookieName = "ua_token"

// AuthConfig holds auth middleware configuration for the operator plane.
type AuthConfig struct {
	// Secret verifies operator session tokens.
	Secret string
	// LoginURL receives unauthenticated operators.
	LoginURL string
}

// operatorClaims is the JWT payload minted by the operator login flow.
type operatorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// requireAuth wraps next with operator session token authentication.
//
// A nil config disables authentication and grants the admin role, which keeps
// local development and handler tests free of token plumbing.
func requireAuth(next http.Handler, cfg *AuthConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAuthExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		if cfg == nil {
			ctx := requestctx.WithOperatorRole(r.Context(), directory.RoleAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		cookie, err := r.Cookie(tokenCookieName)
		if err != nil || strings.TrimSpace(cookie.Value) == "" {
			redirectToLogin(w, r, cfg.LoginURL)
			return
		}

		claims, err := parseOperatorToken(cookie.Value, cfg.Secret)
		if err != nil {
			log.Printf("useradmin auth token rejected: %v", err)
			redirectToLogin(w, r, cfg.LoginURL)
			return
		}

		ctx := requestctx.WithOperatorID(r.Context(), claims.Subject)
		ctx = requestctx.WithOperatorRole(ctx, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isAuthExempt returns true for paths that should bypass authentication.
func isAuthExempt(path string) bool {
	return strings.HasPrefix(path, routepath.StaticPrefix)
}

func redirectToLogin(w http.ResponseWriter, r *http.Request, loginURL string) {
	if strings.TrimSpace(loginURL) == "" {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, loginURL, http.StatusFound)
}

// parseOperatorToken verifies an HS256 operator session token.
func parseOperatorToken(token string, secret string) (*operatorClaims, error) {
	claims := &operatorClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse operator token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("operator token is not valid")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, fmt.Errorf("operator token missing subject")
	}
	return claims, nil
}

// canManage reports whether the request's operator may mutate users.
func canManage(r *http.Request) bool {
	return requestctx.OperatorRoleFromContext(r.Context()) == directory.RoleAdmin
}
