package wire

import (
	"review-hub/internal/adaptor"
	"review-hub/internal/data/repository"
	"review-hub/pkg/middleware"
	"review-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	commentHandler *adaptor.CommentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Reads are public; the author/staff check on mutations lives in
	// the service, the middleware only establishes identity.
	r.Get("/api/v1/titles/{titleID}/reviews", reviewHandler.List)
	r.Get("/api/v1/titles/{titleID}/reviews/{reviewID}", reviewHandler.Get)
	r.Get("/api/v1/titles/{titleID}/reviews/{reviewID}/comments", commentHandler.List)
	r.Get("/api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.Get)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))

		r.Post("/api/v1/titles/{titleID}/reviews", reviewHandler.Create)
		r.Patch("/api/v1/titles/{titleID}/reviews/{reviewID}", reviewHandler.Update)
		r.Delete("/api/v1/titles/{titleID}/reviews/{reviewID}", reviewHandler.Delete)

		r.Post("/api/v1/titles/{titleID}/reviews/{reviewID}/comments", commentHandler.Create)
		r.Patch("/api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.Update)
		r.Delete("/api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.Delete)
	})
}
