package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/RehanShaikh007/texhub-backend/pkg/auth"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

type contextKey string

const (
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

// AuthMiddleware validates JWT token
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondJSON(w, http.StatusUnauthorized, Response{
				Success: false,
				Error:   "Authorization header required",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondJSON(w, http.StatusUnauthorized, Response{
				Success: false,
				Error:   "Invalid authorization header format",
			})
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			logger.Warn(r.Context()).Err(err).Msg("Invalid token")
			respondJSON(w, http.StatusUnauthorized, Response{
				Success: false,
				Error:   "Invalid token",
			})
			return
		}

		ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// AdminMiddleware checks if the caller has the admin role
func AdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value(RoleKey).(string)
		if !ok || role != "admin" {
			respondJSON(w, http.StatusForbidden, Response{
				Success: false,
				Error:   "Admin access required",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
