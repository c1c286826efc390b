package usecase

import (
	"context"
	"fmt"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"
	"review-hub/internal/dto/request"
	"review-hub/internal/dto/response"

	"go.uber.org/zap"
)

// CatalogService covers the two slug-keyed lookup tables. Categories
// and genres support list, create and delete only; identity is the
// slug and it never changes.
type CatalogService interface {
	ListCategories(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, slug string) error

	ListGenres(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	DeleteGenre(ctx context.Context, slug string) error
}

type catalogService struct {
	categories repository.CategoryRepository
	genres     repository.GenreRepository
	log        *zap.Logger
}

func NewCatalogService(categories repository.CategoryRepository, genres repository.GenreRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		categories: categories,
		genres:     genres,
		log:        log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListCategories(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	categories, err := s.categories.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.categories.CountAll(ctx, search)
	if err != nil {
		return nil, err
	}

	items := make([]response.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, response.CategoryToResponse(category))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	existing, err := s.categories.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check category slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("category %s: %w", req.Slug, ErrAlreadyExists)
	}

	category := &entity.Category{Name: req.Name, Slug: req.Slug}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	s.log.Info("Category created", zap.String("slug", category.Slug))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, slug string) error {
	deleted, err := s.categories.DeleteBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("category %s: %w", slug, ErrNotFound)
	}

	s.log.Info("Category deleted", zap.String("slug", slug))
	return nil
}

func (s *catalogService) ListGenres(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	genres, err := s.genres.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.genres.CountAll(ctx, search)
	if err != nil {
		return nil, err
	}

	items := make([]response.GenreResponse, 0, len(genres))
	for _, genre := range genres {
		items = append(items, response.GenreToResponse(genre))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *catalogService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	existing, err := s.genres.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check genre slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("genre %s: %w", req.Slug, ErrAlreadyExists)
	}

	genre := &entity.Genre{Name: req.Name, Slug: req.Slug}
	if err := s.genres.Create(ctx, genre); err != nil {
		return nil, err
	}

	s.log.Info("Genre created", zap.String("slug", genre.Slug))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *catalogService) DeleteGenre(ctx context.Context, slug string) error {
	deleted, err := s.genres.DeleteBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("genre %s: %w", slug, ErrNotFound)
	}

	s.log.Info("Genre deleted", zap.String("slug", slug))
	return nil
}
