// filepath: internal/services/auth/middleware.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// SessionCookie carries the admin token for browser sessions.
const SessionCookie = "nav_token"

type contextKey struct{}

var adminKey contextKey

// Middleware attaches the admin flag to requests and guards admin-only routes.
type Middleware struct {
	Token TokenService
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(token TokenService) *Middleware {
	return &Middleware{Token: token}
}

// Identify resolves whether the caller holds a live admin session and
// stores the result in the request context. It never rejects: public
// routes serve both kinds of caller, they just see different rows.
func (m *Middleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), adminKey, m.isAdmin(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects requests without a live admin session.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Authentication required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// isAdmin checks the bearer header first, then the session cookie.
func (m *Middleware) isAdmin(r *http.Request) bool {
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		if m.Token.Validate(strings.TrimPrefix(authHeader, "Bearer ")) {
			return true
		}
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return m.Token.Validate(cookie.Value)
	}
	return false
}

// IsAdmin reports the admin flag Identify stored in the context.
func IsAdmin(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(adminKey).(bool)
	return isAdmin
}

// WithAdmin returns a context carrying an explicit admin flag. Test helper
// for handlers that read IsAdmin.
func WithAdmin(ctx context.Context, isAdmin bool) context.Context {
	return context.WithValue(ctx, adminKey, isAdmin)
}
