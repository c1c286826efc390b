package repository

import (
	"context"
	"fmt"

	"review-hub/internal/data/entity"
	"review-hub/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	FindByTitleID(ctx context.Context, titleID int64, limit, offset int) ([]*entity.Review, error)
	FindByTitleAndAuthor(ctx context.Context, titleID, authorID int64) (*entity.Review, error)
	CountByTitleID(ctx context.Context, titleID int64) (int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (rr *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (title_id, author_id, text, score, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := rr.db.QueryRow(ctx, query,
		review.TitleID,
		review.AuthorID,
		review.Text,
		review.Score,
		review.CreatedAt,
	).Scan(&review.ID)

	if err != nil {
		rr.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("title_id", review.TitleID),
			zap.Int64("author_id", review.AuthorID),
		)
		return fmt.Errorf("create review for title %d by user %d: %w",
			review.TitleID, review.AuthorID, err)
	}

	return nil
}

func (rr *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := `
		SELECT id, title_id, author_id, text, score, created_at
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := rr.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.TitleID,
		&review.AuthorID,
		&review.Text,
		&review.Score,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %d: %w", id, err)
	}

	return &review, nil
}

func (rr *reviewRepository) FindByTitleID(ctx context.Context, titleID int64, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, title_id, author_id, text, score, created_at
		FROM reviews
		WHERE title_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := rr.db.Query(ctx, query, titleID, limit, offset)
	if err != nil {
		rr.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.Int64("title_id", titleID),
		)
		return nil, fmt.Errorf("list reviews for title %d: %w", titleID, err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.TitleID,
			&review.AuthorID,
			&review.Text,
			&review.Score,
			&review.CreatedAt,
		)
		if err != nil {
			rr.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

// FindByTitleAndAuthor backs the one-review-per-user-per-title check.
func (rr *reviewRepository) FindByTitleAndAuthor(ctx context.Context, titleID, authorID int64) (*entity.Review, error) {
	query := `
		SELECT id, title_id, author_id, text, score, created_at
		FROM reviews
		WHERE title_id = $1 AND author_id = $2
	`

	var review entity.Review
	err := rr.db.QueryRow(ctx, query, titleID, authorID).Scan(
		&review.ID,
		&review.TitleID,
		&review.AuthorID,
		&review.Text,
		&review.Score,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find review by title and author",
			zap.Error(err),
			zap.Int64("title_id", titleID),
			zap.Int64("author_id", authorID),
		)
		return nil, fmt.Errorf("find review by title %d and author %d: %w", titleID, authorID, err)
	}

	return &review, nil
}

func (rr *reviewRepository) CountByTitleID(ctx context.Context, titleID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE title_id = $1`

	var count int64
	if err := rr.db.QueryRow(ctx, query, titleID).Scan(&count); err != nil {
		rr.log.Error("Failed to count reviews",
			zap.Error(err),
			zap.Int64("title_id", titleID),
		)
		return 0, fmt.Errorf("count reviews for title %d: %w", titleID, err)
	}

	return count, nil
}

func (rr *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `UPDATE reviews SET text = $2, score = $3 WHERE id = $1`

	result, err := rr.db.Exec(ctx, query, review.ID, review.Text, review.Score)
	if err != nil {
		rr.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", review.ID),
		)
		return fmt.Errorf("update review %d: %w", review.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d not found", review.ID)
	}

	return nil
}

// Delete reports whether a row was actually removed. Comments cascade.
func (rr *reviewRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := rr.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		rr.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return false, fmt.Errorf("delete review %d: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}
