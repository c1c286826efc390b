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

type CommentService interface {
	ListByReview(ctx context.Context, titleID, reviewID int64, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	Get(ctx context.Context, titleID, reviewID, commentID int64) (*response.CommentResponse, error)
	Create(ctx context.Context, requester *entity.User, titleID, reviewID int64, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	Update(ctx context.Context, requester *entity.User, titleID, reviewID, commentID int64, req *request.UpdateCommentRequest) (*response.CommentResponse, error)
	Delete(ctx context.Context, requester *entity.User, titleID, reviewID, commentID int64) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

// requireReview walks the title -> review parent chain from the path;
// any broken link is NotFound.
func (s *commentService) requireReview(ctx context.Context, titleID, reviewID int64) (*entity.Review, error) {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil || review.TitleID != titleID {
		return nil, fmt.Errorf("review %d for title %d: %w", reviewID, titleID, ErrNotFound)
	}
	return review, nil
}

func (s *commentService) requireComment(ctx context.Context, reviewID, commentID int64) (*entity.Comment, error) {
	comment, err := s.repo.Comment.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.ReviewID != reviewID {
		return nil, fmt.Errorf("comment %d for review %d: %w", commentID, reviewID, ErrNotFound)
	}
	return comment, nil
}

func (s *commentService) authorName(ctx context.Context, cache map[int64]string, authorID int64) (string, error) {
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

func (s *commentService) ListByReview(ctx context.Context, titleID, reviewID int64, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	if _, err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByReviewID(ctx, reviewID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Comment.CountByReviewID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string)
	items := make([]response.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		name, err := s.authorName(ctx, names, comment.AuthorID)
		if err != nil {
			return nil, err
		}
		items = append(items, response.CommentToResponse(comment, name))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *commentService) Get(ctx context.Context, titleID, reviewID, commentID int64) (*response.CommentResponse, error) {
	if _, err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := s.requireComment(ctx, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	name, err := s.authorName(ctx, make(map[int64]string), comment.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, name)
	return &resp, nil
}

func (s *commentService) Create(ctx context.Context, requester *entity.User, titleID, reviewID int64, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if _, err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ReviewID:  reviewID,
		AuthorID:  requester.ID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info("Comment created",
		zap.Int64("comment_id", comment.ID),
		zap.Int64("review_id", reviewID),
		zap.String("author", requester.Username),
	)

	resp := response.CommentToResponse(comment, requester.Username)
	return &resp, nil
}

func (s *commentService) Update(ctx context.Context, requester *entity.User, titleID, reviewID, commentID int64, req *request.UpdateCommentRequest) (*response.CommentResponse, error) {
	if _, err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := s.requireComment(ctx, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if !CanModifyResource(requester, comment.AuthorID) {
		return nil, fmt.Errorf("update comment %d as %s: %w", commentID, requester.Username, ErrForbidden)
	}

	comment.Text = req.Text
	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		return nil, err
	}

	name, err := s.authorName(ctx, make(map[int64]string), comment.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, name)
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, requester *entity.User, titleID, reviewID, commentID int64) error {
	if _, err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return err
	}

	comment, err := s.requireComment(ctx, reviewID, commentID)
	if err != nil {
		return err
	}

	if !CanModifyResource(requester, comment.AuthorID) {
		return fmt.Errorf("delete comment %d as %s: %w", commentID, requester.Username, ErrForbidden)
	}

	deleted, err := s.repo.Comment.Delete(ctx, commentID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
	}

	s.log.Info("Comment deleted",
		zap.Int64("comment_id", commentID),
		zap.String("requester", requester.Username),
	)
	return nil
}
