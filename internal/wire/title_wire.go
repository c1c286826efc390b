package wire

import (
	"review-hub/internal/adaptor"
	"review-hub/internal/data/repository"
	"review-hub/pkg/middleware"
	"review-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTitle(
	r chi.Router,
	titleHandler *adaptor.TitleHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Get("/api/v1/titles", titleHandler.List)
	r.Get("/api/v1/titles/{titleID}", titleHandler.Get)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))
		r.Use(middleware.AdminOnly(log))

		r.Post("/api/v1/titles", titleHandler.Create)
		r.Patch("/api/v1/titles/{titleID}", titleHandler.Update)
		r.Delete("/api/v1/titles/{titleID}", titleHandler.Delete)
	})
}
