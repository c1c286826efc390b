package repository

import (
	"context"
	"fmt"

	"review-hub/internal/data/entity"
	"review-hub/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Category, error)
	CountAll(ctx context.Context, search string) (int64, error)
	DeleteBySlug(ctx context.Context, slug string) (bool, error)
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (cr *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`

	err := cr.db.QueryRow(ctx, query, category.Name, category.Slug).Scan(&category.ID)
	if err != nil {
		cr.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("slug", category.Slug),
		)
		return fmt.Errorf("create category %s: %w", category.Slug, err)
	}

	return nil
}

func (cr *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	query := `SELECT id, name, slug FROM categories WHERE slug = $1`

	var category entity.Category
	err := cr.db.QueryRow(ctx, query, slug).Scan(&category.ID, &category.Name, &category.Slug)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find category by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find category by slug %s: %w", slug, err)
	}

	return &category, nil
}

func (cr *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	query := `SELECT id, name, slug FROM categories WHERE id = $1`

	var category entity.Category
	err := cr.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name, &category.Slug)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return nil, fmt.Errorf("find category by ID %d: %w", id, err)
	}

	return &category, nil
}

func (cr *categoryRepository) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Category, error) {
	query := `
		SELECT id, name, slug
		FROM categories
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := cr.db.Query(ctx, query, search, limit, offset)
	if err != nil {
		cr.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug); err != nil {
			cr.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

func (cr *categoryRepository) CountAll(ctx context.Context, search string) (int64, error) {
	query := `SELECT COUNT(*) FROM categories WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`

	var count int64
	if err := cr.db.QueryRow(ctx, query, search).Scan(&count); err != nil {
		cr.log.Error("Failed to count categories", zap.Error(err))
		return 0, fmt.Errorf("count categories: %w", err)
	}

	return count, nil
}

// DeleteBySlug reports whether a row was actually removed.
func (cr *categoryRepository) DeleteBySlug(ctx context.Context, slug string) (bool, error) {
	query := `DELETE FROM categories WHERE slug = $1`

	result, err := cr.db.Exec(ctx, query, slug)
	if err != nil {
		cr.log.Error("Failed to delete category",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return false, fmt.Errorf("delete category %s: %w", slug, err)
	}

	return result.RowsAffected() > 0, nil
}
