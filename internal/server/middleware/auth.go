// Package middleware provides HTTP middleware for the assessment API.
package middleware

import (
	"net/http"
	"strings"
)

// TokenValidator validates bearer tokens. Implementations reject expired,
// malformed or mis-signed tokens with an error.
type TokenValidator interface {
	ValidateToken(tokenString string) error
}

// Auth creates middleware that requires a valid bearer token on every
// request it wraps.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// "Bearer" prefix is matched case-insensitively.
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if err := validator.ValidateToken(strings.TrimSpace(parts[1])); err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
