package usecase

import (
	"review-hub/internal/data/repository"
	"review-hub/pkg/mailer"
	"review-hub/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Catalog CatalogService
	Title   TitleService
	Review  ReviewService
	Comment CommentService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, mail, config, log),
		User:    NewUserService(repo.User, log),
		Catalog: NewCatalogService(repo.Category, repo.Genre, log),
		Title:   NewTitleService(repo, log),
		Review:  NewReviewService(repo, log),
		Comment: NewCommentService(repo, log),
	}
}
