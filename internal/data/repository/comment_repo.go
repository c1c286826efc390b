package repository

import (
	"context"
	"fmt"

	"review-hub/internal/data/entity"
	"review-hub/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)
	FindByReviewID(ctx context.Context, reviewID int64, limit, offset int) ([]*entity.Comment, error)
	CountByReviewID(ctx context.Context, reviewID int64) (int64, error)
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

func (cr *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (review_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := cr.db.QueryRow(ctx, query,
		comment.ReviewID,
		comment.AuthorID,
		comment.Text,
		comment.CreatedAt,
	).Scan(&comment.ID)

	if err != nil {
		cr.log.Error("Failed to create comment",
			zap.Error(err),
			zap.Int64("review_id", comment.ReviewID),
			zap.Int64("author_id", comment.AuthorID),
		)
		return fmt.Errorf("create comment on review %d by user %d: %w",
			comment.ReviewID, comment.AuthorID, err)
	}

	return nil
}

func (cr *commentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	query := `
		SELECT id, review_id, author_id, text, created_at
		FROM comments
		WHERE id = $1
	`

	var comment entity.Comment
	err := cr.db.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.ReviewID,
		&comment.AuthorID,
		&comment.Text,
		&comment.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find comment by ID",
			zap.Error(err),
			zap.Int64("comment_id", id),
		)
		return nil, fmt.Errorf("find comment by ID %d: %w", id, err)
	}

	return &comment, nil
}

func (cr *commentRepository) FindByReviewID(ctx context.Context, reviewID int64, limit, offset int) ([]*entity.Comment, error) {
	query := `
		SELECT id, review_id, author_id, text, created_at
		FROM comments
		WHERE review_id = $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3
	`

	rows, err := cr.db.Query(ctx, query, reviewID, limit, offset)
	if err != nil {
		cr.log.Error("Failed to list comments",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return nil, fmt.Errorf("list comments for review %d: %w", reviewID, err)
	}
	defer rows.Close()

	var comments []*entity.Comment
	for rows.Next() {
		var comment entity.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.ReviewID,
			&comment.AuthorID,
			&comment.Text,
			&comment.CreatedAt,
		)
		if err != nil {
			cr.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}

	return comments, nil
}

func (cr *commentRepository) CountByReviewID(ctx context.Context, reviewID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM comments WHERE review_id = $1`

	var count int64
	if err := cr.db.QueryRow(ctx, query, reviewID).Scan(&count); err != nil {
		cr.log.Error("Failed to count comments",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return 0, fmt.Errorf("count comments for review %d: %w", reviewID, err)
	}

	return count, nil
}

func (cr *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	query := `UPDATE comments SET text = $2 WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, comment.ID, comment.Text)
	if err != nil {
		cr.log.Error("Failed to update comment",
			zap.Error(err),
			zap.Int64("comment_id", comment.ID),
		)
		return fmt.Errorf("update comment %d: %w", comment.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %d not found", comment.ID)
	}

	return nil
}

// Delete reports whether a row was actually removed.
func (cr *commentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := cr.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		cr.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.Int64("comment_id", id),
		)
		return false, fmt.Errorf("delete comment %d: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}
