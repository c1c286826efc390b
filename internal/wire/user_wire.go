package wire

import (
	"review-hub/internal/adaptor"
	"review-hub/internal/data/repository"
	"review-hub/pkg/middleware"
	"review-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Self-service profile: any authenticated user. Registered before
	// the {username} routes so "me" never matches as a username.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))

		r.Get("/api/v1/users/me", userHandler.Profile)
		r.Patch("/api/v1/users/me", userHandler.UpdateProfile)
	})

	// User management: admin or superuser only.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))
		r.Use(middleware.AdminOnly(log))

		r.Get("/api/v1/users", userHandler.List)
		r.Post("/api/v1/users", userHandler.Create)
		r.Get("/api/v1/users/{username}", userHandler.Get)
		r.Patch("/api/v1/users/{username}", userHandler.Update)
		r.Delete("/api/v1/users/{username}", userHandler.Delete)
	})
}
