package wire

import (
	"review-hub/internal/adaptor"
	"review-hub/internal/data/repository"
	"review-hub/pkg/middleware"
	"review-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Reads are open to anonymous clients.
	r.Get("/api/v1/categories", catalogHandler.ListCategories)
	r.Get("/api/v1/genres", catalogHandler.ListGenres)

	// Writes are admin-gated. Categories and genres have no update:
	// slug is identity.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))
		r.Use(middleware.AdminOnly(log))

		r.Post("/api/v1/categories", catalogHandler.CreateCategory)
		r.Delete("/api/v1/categories/{slug}", catalogHandler.DeleteCategory)
		r.Post("/api/v1/genres", catalogHandler.CreateGenre)
		r.Delete("/api/v1/genres/{slug}", catalogHandler.DeleteGenre)
	})
}
