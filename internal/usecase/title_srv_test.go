package usecase

import (
	"context"
	"testing"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"
	"review-hub/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func titleTestRepo(title *fakeTitleRepo, categories *fakeCategoryRepo, genres *fakeGenreRepo) *repository.Repository {
	if title == nil {
		title = &fakeTitleRepo{}
	}
	if categories == nil {
		categories = &fakeCategoryRepo{}
	}
	if genres == nil {
		genres = &fakeGenreRepo{}
	}
	return &repository.Repository{
		Title:    title,
		Category: categories,
		Genre:    genres,
		Review:   &fakeReviewRepo{},
		User:     &fakeUserRepo{},
	}
}

func TestTitleCreateUnknownCategoryIsValidationError(t *testing.T) {
	svc := NewTitleService(titleTestRepo(nil, nil, nil), zap.NewNop())

	category := "nope"
	_, err := svc.Create(context.Background(), &request.TitleRequest{
		Name: "Dune", Year: 1965, Category: &category,
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestTitleCreateUnknownGenreIsValidationError(t *testing.T) {
	svc := NewTitleService(titleTestRepo(nil, nil, nil), zap.NewNop())

	_, err := svc.Create(context.Background(), &request.TitleRequest{
		Name: "Dune", Year: 1965, Genres: []string{"space-opera"},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestTitleCreateResolvesSlugs(t *testing.T) {
	categories := &fakeCategoryRepo{
		FindBySlugFn: func(ctx context.Context, slug string) (*entity.Category, error) {
			return &entity.Category{ID: 3, Name: "Books", Slug: slug}, nil
		},
	}
	genres := &fakeGenreRepo{
		FindBySlugFn: func(ctx context.Context, slug string) (*entity.Genre, error) {
			return &entity.Genre{ID: 7, Name: "Sci-Fi", Slug: slug}, nil
		},
	}

	var storedGenreIDs []int64
	titles := &fakeTitleRepo{
		CreateFn: func(ctx context.Context, title *entity.Title, genreIDs []int64) error {
			title.ID = 12
			storedGenreIDs = genreIDs
			return nil
		},
	}
	svc := NewTitleService(titleTestRepo(titles, categories, genres), zap.NewNop())

	category := "books"
	resp, err := svc.Create(context.Background(), &request.TitleRequest{
		Name: "Dune", Year: 1965, Category: &category, Genres: []string{"sci-fi"},
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{7}, storedGenreIDs)
	assert.Equal(t, int64(12), resp.ID)
	require.NotNil(t, resp.Category)
	assert.Equal(t, "books", *resp.Category)
	assert.Equal(t, []string{"sci-fi"}, resp.Genres)
}

func TestTitleGetMissing(t *testing.T) {
	svc := NewTitleService(titleTestRepo(nil, nil, nil), zap.NewNop())

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTitleGetCarriesRating(t *testing.T) {
	rating := 8.5
	titles := &fakeTitleRepo{
		FindByIDFn: func(ctx context.Context, id int64) (*entity.TitleWithRating, error) {
			return &entity.TitleWithRating{
				Title:  entity.Title{ID: id, Name: "Dune", Year: 1965},
				Rating: &rating,
			}, nil
		},
	}
	svc := NewTitleService(titleTestRepo(titles, nil, nil), zap.NewNop())

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, resp.Rating)
	assert.Equal(t, 8.5, *resp.Rating)
}

func TestTitleDeleteMissing(t *testing.T) {
	svc := NewTitleService(titleTestRepo(nil, nil, nil), zap.NewNop())

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
