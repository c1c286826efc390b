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

type TitleService interface {
	List(ctx context.Context, filter repository.TitleFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleReadResponse], error)
	Get(ctx context.Context, id int64) (*response.TitleReadResponse, error)
	Create(ctx context.Context, req *request.TitleRequest) (*response.TitleWriteResponse, error)
	Update(ctx context.Context, id int64, req *request.TitleUpdateRequest) (*response.TitleWriteResponse, error)
	Delete(ctx context.Context, id int64) error
}

type titleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTitleService(repo *repository.Repository, log *zap.Logger) TitleService {
	return &titleService{
		repo: repo,
		log:  log.With(zap.String("service", "title")),
	}
}

// resolveCategory maps a category slug to its id. An unknown slug is a
// validation error, not a 404: the title is the resource here.
func (s *titleService) resolveCategory(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := s.repo.Category.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("unknown category %q: %w", slug, ErrValidation)
	}
	return category, nil
}

func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]*entity.Genre, error) {
	genres := make([]*entity.Genre, 0, len(slugs))
	for _, slug := range slugs {
		genre, err := s.repo.Genre.FindBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if genre == nil {
			return nil, fmt.Errorf("unknown genre %q: %w", slug, ErrValidation)
		}
		genres = append(genres, genre)
	}
	return genres, nil
}

func (s *titleService) readResponse(ctx context.Context, title *entity.TitleWithRating) (*response.TitleReadResponse, error) {
	var category *entity.Category
	if title.CategoryID != nil {
		var err error
		category, err = s.repo.Category.FindByID(ctx, *title.CategoryID)
		if err != nil {
			return nil, err
		}
	}

	genres, err := s.repo.Title.GenresForTitle(ctx, title.ID)
	if err != nil {
		return nil, err
	}

	resp := response.TitleToReadResponse(title, category, genres)
	return &resp, nil
}

func (s *titleService) List(ctx context.Context, filter repository.TitleFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleReadResponse], error) {
	titles, err := s.repo.Title.FindAll(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Title.CountAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]response.TitleReadResponse, 0, len(titles))
	for _, title := range titles {
		resp, err := s.readResponse(ctx, title)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *titleService) Get(ctx context.Context, id int64) (*response.TitleReadResponse, error) {
	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, fmt.Errorf("title %d: %w", id, ErrNotFound)
	}

	return s.readResponse(ctx, title)
}

func (s *titleService) Create(ctx context.Context, req *request.TitleRequest) (*response.TitleWriteResponse, error) {
	title := &entity.Title{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
	}

	var categorySlug *string
	if req.Category != nil {
		category, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
		categorySlug = &category.Slug
	}

	genres, err := s.resolveGenres(ctx, req.Genres)
	if err != nil {
		return nil, err
	}
	genreIDs := make([]int64, 0, len(genres))
	genreSlugs := make([]string, 0, len(genres))
	for _, genre := range genres {
		genreIDs = append(genreIDs, genre.ID)
		genreSlugs = append(genreSlugs, genre.Slug)
	}

	if err := s.repo.Title.Create(ctx, title, genreIDs); err != nil {
		return nil, err
	}

	s.log.Info("Title created",
		zap.Int64("title_id", title.ID),
		zap.String("name", title.Name),
	)

	resp := response.TitleToWriteResponse(title, categorySlug, genreSlugs)
	return &resp, nil
}

func (s *titleService) Update(ctx context.Context, id int64, req *request.TitleUpdateRequest) (*response.TitleWriteResponse, error) {
	existing, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("title %d: %w", id, ErrNotFound)
	}

	title := existing.Title
	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = req.Description
	}

	var categorySlug *string
	if req.Category != nil {
		category, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
		categorySlug = &category.Slug
	} else if title.CategoryID != nil {
		category, err := s.repo.Category.FindByID(ctx, *title.CategoryID)
		if err != nil {
			return nil, err
		}
		if category != nil {
			categorySlug = &category.Slug
		}
	}

	replaceGenres := req.Genres != nil
	var genreIDs []int64
	if replaceGenres {
		genres, err := s.resolveGenres(ctx, req.Genres)
		if err != nil {
			return nil, err
		}
		for _, genre := range genres {
			genreIDs = append(genreIDs, genre.ID)
		}
	}

	if err := s.repo.Title.Update(ctx, &title, genreIDs, replaceGenres); err != nil {
		return nil, err
	}

	genres, err := s.repo.Title.GenresForTitle(ctx, title.ID)
	if err != nil {
		return nil, err
	}
	genreSlugs := make([]string, 0, len(genres))
	for _, genre := range genres {
		genreSlugs = append(genreSlugs, genre.Slug)
	}

	resp := response.TitleToWriteResponse(&title, categorySlug, genreSlugs)
	return &resp, nil
}

func (s *titleService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Title.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("title %d: %w", id, ErrNotFound)
	}
	return nil
}
