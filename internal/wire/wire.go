package wire

import (
	"net/http"

	"review-hub/internal/adaptor"
	"review-hub/internal/data/repository"
	"review-hub/internal/usecase"
	"review-hub/pkg/mailer"
	"review-hub/pkg/middleware"
	"review-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the route tree.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// SMTP when configured, otherwise codes go to the log.
	var mail mailer.Mailer
	if config.Email.Host != "" {
		mail = mailer.NewSMTPMailer(config.Email, logger)
	} else {
		mail = mailer.NewLogMailer(logger)
	}

	service := usecase.NewService(repo, config, mail, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, repo, config, logger)
	wireCatalog(r, handler.Catalog, repo, config, logger)
	wireTitle(r, handler.Title, repo, config, logger)
	wireReview(r, handler.Review, handler.Comment, repo, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
