package usecase

import (
	"context"
	"testing"

	"review-hub/internal/data/entity"
	"review-hub/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	categories := &fakeCategoryRepo{
		FindBySlugFn: func(ctx context.Context, slug string) (*entity.Category, error) {
			return &entity.Category{ID: 1, Name: "Books", Slug: slug}, nil
		},
	}
	svc := NewCatalogService(categories, &fakeGenreRepo{}, zap.NewNop())

	_, err := svc.CreateCategory(context.Background(), &request.CategoryRequest{
		Name: "Books again", Slug: "books",
	})

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateCategory(t *testing.T) {
	var created *entity.Category
	categories := &fakeCategoryRepo{
		CreateFn: func(ctx context.Context, category *entity.Category) error {
			category.ID = 5
			created = category
			return nil
		},
	}
	svc := NewCatalogService(categories, &fakeGenreRepo{}, zap.NewNop())

	resp, err := svc.CreateCategory(context.Background(), &request.CategoryRequest{
		Name: "Books", Slug: "books",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "books", resp.Slug)
	assert.Equal(t, "Books", resp.Name)
}

func TestDeleteCategory(t *testing.T) {
	t.Run("existing slug", func(t *testing.T) {
		categories := &fakeCategoryRepo{
			DeleteBySlugFn: func(ctx context.Context, slug string) (bool, error) {
				return true, nil
			},
		}
		svc := NewCatalogService(categories, &fakeGenreRepo{}, zap.NewNop())

		assert.NoError(t, svc.DeleteCategory(context.Background(), "books"))
	})

	t.Run("missing slug", func(t *testing.T) {
		svc := NewCatalogService(&fakeCategoryRepo{}, &fakeGenreRepo{}, zap.NewNop())

		err := svc.DeleteCategory(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListCategoriesEmptyResultIsNotNil(t *testing.T) {
	svc := NewCatalogService(&fakeCategoryRepo{}, &fakeGenreRepo{}, zap.NewNop())

	resp, err := svc.ListCategories(context.Background(), "", &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)

	// Empty pages serialize as [] rather than null.
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}

func TestListCategoriesMetaUsesEffectiveLimit(t *testing.T) {
	var queriedLimit int
	categories := &fakeCategoryRepo{
		FindAllFn: func(ctx context.Context, search string, limit, offset int) ([]*entity.Category, error) {
			queriedLimit = limit
			return nil, nil
		},
		CountAllFn: func(ctx context.Context, search string) (int64, error) {
			return 250, nil
		},
	}
	svc := NewCatalogService(categories, &fakeGenreRepo{}, zap.NewNop())

	// per_page is capped at 100; the meta must describe the page that
	// was actually served, not the requested size.
	resp, err := svc.ListCategories(context.Background(), "", &request.PaginatedRequest{Page: 1, PerPage: 1000})
	require.NoError(t, err)

	assert.Equal(t, 100, queriedLimit)
	assert.Equal(t, 100, resp.Pagination.PerPage)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestCreateGenreDuplicateSlug(t *testing.T) {
	genres := &fakeGenreRepo{
		FindBySlugFn: func(ctx context.Context, slug string) (*entity.Genre, error) {
			return &entity.Genre{ID: 2, Name: "Sci-Fi", Slug: slug}, nil
		},
	}
	svc := NewCatalogService(&fakeCategoryRepo{}, genres, zap.NewNop())

	_, err := svc.CreateGenre(context.Background(), &request.GenreRequest{
		Name: "Sci-Fi", Slug: "sci-fi",
	})

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestDeleteGenreMissing(t *testing.T) {
	svc := NewCatalogService(&fakeCategoryRepo{}, &fakeGenreRepo{}, zap.NewNop())

	err := svc.DeleteGenre(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
