package wire

import (
	"review-hub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Both auth endpoints are public: they are how a token is obtained.
	r.Post("/api/v1/auth/signup", authHandler.SignUp)
	r.Post("/api/v1/auth/token", authHandler.Token)
}
