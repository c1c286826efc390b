package middleware

import (
	"context"
	"net/http"
	"strings"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"
	"review-hub/pkg/utils"

	"go.uber.org/zap"
)

// UserFromContext returns the authenticated user placed by Authenticate.
func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := utils.GetUserFromContext(ctx).(*entity.User)
	return user, ok && user != nil
}

// Authenticate validates the bearer JWT and loads the current user
// record, so role changes take effect without waiting for token expiry.
func Authenticate(users repository.UserRepository, jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseAccessToken(token, jwtSecret)
			if err != nil {
				logger.Warn("Access token rejected", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			user, err := users.FindByID(r.Context(), claims.UserID)
			if err != nil {
				logger.Error("Failed to load user for token",
					zap.Error(err),
					zap.Int64("user_id", claims.UserID),
				)
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				logger.Warn("Token references missing user", zap.Int64("user_id", claims.UserID))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly gates user management and catalog writes to admin role or
// superuser. Must run after Authenticate.
func AdminOnly(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !user.IsAdmin() {
				logger.Warn("Non-admin access attempt",
					zap.String("username", user.Username),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
