package usecase

import (
	"context"
	"fmt"
	"time"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"
	"review-hub/internal/dto/request"
	"review-hub/internal/dto/response"

	"go.uber.org/zap"
)

type ReviewService interface {
	ListByTitle(ctx context.Context, titleID int64, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	Get(ctx context.Context, titleID, reviewID int64) (*response.ReviewResponse, error)
	Create(ctx context.Context, requester *entity.User, titleID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	Update(ctx context.Context, requester *entity.User, titleID, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, requester *entity.User, titleID, reviewID int64) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// requireTitle resolves the parent title or reports NotFound.
func (s *reviewService) requireTitle(ctx context.Context, titleID int64) error {
	title, err := s.repo.Title.FindByID(ctx, titleID)
	if err != nil {
		return err
	}
	if title == nil {
		return fmt.Errorf("title %d: %w", titleID, ErrNotFound)
	}
	return nil
}

// requireReview resolves a review and verifies it belongs to the title
// in the path; a mismatch is indistinguishable from absence.
func (s *reviewService) requireReview(ctx context.Context, titleID, reviewID int64) (*entity.Review, error) {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil || review.TitleID != titleID {
		return nil, fmt.Errorf("review %d for title %d: %w", reviewID, titleID, ErrNotFound)
	}
	return review, nil
}

// authorName resolves an author id for display, tolerating a deleted
// account.
func (s *reviewService) authorName(ctx context.Context, cache map[int64]string, authorID int64) (string, error) {
	if name, ok := cache[authorID]; ok {
		return name, nil
	}

	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil {
		return "", err
	}

	name := ""
	if user != nil {
		name = user.Username
	}
	cache[authorID] = name
	return name, nil
}

func (s *reviewService) ListByTitle(ctx context.Context, titleID int64, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByTitleID(ctx, titleID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Review.CountByTitleID(ctx, titleID)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string)
	items := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		name, err := s.authorName(ctx, names, review.AuthorID)
		if err != nil {
			return nil, err
		}
		items = append(items, response.ReviewToResponse(review, name))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *reviewService) Get(ctx context.Context, titleID, reviewID int64) (*response.ReviewResponse, error) {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	review, err := s.requireReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	name, err := s.authorName(ctx, make(map[int64]string), review.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review, name)
	return &resp, nil
}

func validScore(score int) bool {
	return score >= entity.MinScore && score <= entity.MaxScore
}

// Create stamps the requester as author and enforces one review per
// (title, author).
func (s *reviewService) Create(ctx context.Context, requester *entity.User, titleID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if !validScore(req.Score) {
		return nil, fmt.Errorf("score %d: %w", req.Score, ErrValidation)
	}

	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	existing, err := s.repo.Review.FindByTitleAndAuthor(ctx, titleID, requester.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("review for title %d by %s: %w", titleID, requester.Username, ErrAlreadyExists)
	}

	review := &entity.Review{
		TitleID:   titleID,
		AuthorID:  requester.ID,
		Text:      req.Text,
		Score:     req.Score,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("title_id", titleID),
		zap.String("author", requester.Username),
	)

	resp := response.ReviewToResponse(review, requester.Username)
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, requester *entity.User, titleID, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if req.Score != nil && !validScore(*req.Score) {
		return nil, fmt.Errorf("score %d: %w", *req.Score, ErrValidation)
	}

	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	review, err := s.requireReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if !CanModifyResource(requester, review.AuthorID) {
		return nil, fmt.Errorf("update review %d as %s: %w", reviewID, requester.Username, ErrForbidden)
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		return nil, err
	}

	name, err := s.authorName(ctx, make(map[int64]string), review.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review, name)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, requester *entity.User, titleID, reviewID int64) error {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return err
	}

	review, err := s.requireReview(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if !CanModifyResource(requester, review.AuthorID) {
		return fmt.Errorf("delete review %d as %s: %w", reviewID, requester.Username, ErrForbidden)
	}

	deleted, err := s.repo.Review.Delete(ctx, reviewID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("review %d: %w", reviewID, ErrNotFound)
	}

	s.log.Info("Review deleted",
		zap.Int64("review_id", reviewID),
		zap.String("requester", requester.Username),
	)
	return nil
}
