package repository

import (
	"context"
	"fmt"
	"strings"

	"review-hub/internal/data/entity"
	"review-hub/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TitleFilter narrows title listings. Zero values mean "no filter".
type TitleFilter struct {
	CategorySlug string
	GenreSlug    string
	Name         string
	Year         int
}

type TitleRepository interface {
	Create(ctx context.Context, title *entity.Title, genreIDs []int64) error
	FindByID(ctx context.Context, id int64) (*entity.TitleWithRating, error)
	FindAll(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.TitleWithRating, error)
	CountAll(ctx context.Context, filter TitleFilter) (int64, error)
	Update(ctx context.Context, title *entity.Title, genreIDs []int64, replaceGenres bool) error
	Delete(ctx context.Context, id int64) (bool, error)
	GenresForTitle(ctx context.Context, titleID int64) ([]*entity.Genre, error)
}

type titleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleRepository(db database.PgxIface, log *zap.Logger) TitleRepository {
	return &titleRepository{
		db:  db,
		log: log.With(zap.String("repository", "title")),
	}
}

// Create inserts the title and its genre links in one transaction.
func (tr *titleRepository) Create(ctx context.Context, title *entity.Title, genreIDs []int64) error {
	tx, err := tr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create title: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO titles (name, year, description, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err = tx.QueryRow(ctx, query,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
	).Scan(&title.ID)

	if err != nil {
		tr.log.Error("Failed to create title",
			zap.Error(err),
			zap.String("name", title.Name),
		)
		return fmt.Errorf("create title %s: %w", title.Name, err)
	}

	for _, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`,
			title.ID, genreID,
		)
		if err != nil {
			tr.log.Error("Failed to link genre",
				zap.Error(err),
				zap.Int64("title_id", title.ID),
				zap.Int64("genre_id", genreID),
			)
			return fmt.Errorf("link genre %d to title %d: %w", genreID, title.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create title: %w", err)
	}

	return nil
}

const titleSelect = `
	SELECT t.id, t.name, t.year, t.description, t.category_id,
	       AVG(r.score)::float8 AS rating
	FROM titles t
	LEFT JOIN reviews r ON r.title_id = t.id
`

func (tr *titleRepository) FindByID(ctx context.Context, id int64) (*entity.TitleWithRating, error) {
	query := titleSelect + `
		WHERE t.id = $1
		GROUP BY t.id
	`

	var title entity.TitleWithRating
	err := tr.db.QueryRow(ctx, query, id).Scan(
		&title.ID,
		&title.Name,
		&title.Year,
		&title.Description,
		&title.CategoryID,
		&title.Rating,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find title by ID",
			zap.Error(err),
			zap.Int64("title_id", id),
		)
		return nil, fmt.Errorf("find title by ID %d: %w", id, err)
	}

	return &title, nil
}

// buildTitleWhere assembles the WHERE clause for a filter. Args start
// at $1 and the returned arg slice lines up with the placeholders.
func buildTitleWhere(filter TitleFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.CategorySlug != "" {
		add("t.category_id = (SELECT id FROM categories WHERE slug = $%d)", filter.CategorySlug)
	}
	if filter.GenreSlug != "" {
		add(`EXISTS (
			SELECT 1 FROM title_genres tg
			JOIN genres g ON g.id = tg.genre_id
			WHERE tg.title_id = t.id AND g.slug = $%d
		)`, filter.GenreSlug)
	}
	if filter.Name != "" {
		add("t.name ILIKE '%%' || $%d || '%%'", filter.Name)
	}
	if filter.Year != 0 {
		add("t.year = $%d", filter.Year)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (tr *titleRepository) FindAll(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.TitleWithRating, error) {
	where, args := buildTitleWhere(filter)

	query := fmt.Sprintf(`%s
		%s
		GROUP BY t.id
		ORDER BY t.id
		LIMIT $%d OFFSET $%d
	`, titleSelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := tr.db.Query(ctx, query, args...)
	if err != nil {
		tr.log.Error("Failed to list titles", zap.Error(err))
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer rows.Close()

	var titles []*entity.TitleWithRating
	for rows.Next() {
		var title entity.TitleWithRating
		err := rows.Scan(
			&title.ID,
			&title.Name,
			&title.Year,
			&title.Description,
			&title.CategoryID,
			&title.Rating,
		)
		if err != nil {
			tr.log.Error("Failed to scan title row", zap.Error(err))
			return nil, fmt.Errorf("scan title row: %w", err)
		}
		titles = append(titles, &title)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate title rows: %w", err)
	}

	return titles, nil
}

func (tr *titleRepository) CountAll(ctx context.Context, filter TitleFilter) (int64, error) {
	where, args := buildTitleWhere(filter)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM titles t %s`, where)

	var count int64
	if err := tr.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		tr.log.Error("Failed to count titles", zap.Error(err))
		return 0, fmt.Errorf("count titles: %w", err)
	}

	return count, nil
}

// Update rewrites the title row; when replaceGenres is set the genre
// links are replaced with genreIDs inside the same transaction.
func (tr *titleRepository) Update(ctx context.Context, title *entity.Title, genreIDs []int64, replaceGenres bool) error {
	tx, err := tr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update title: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE titles
		SET name = $2, year = $3, description = $4, category_id = $5
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		title.ID,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
	)
	if err != nil {
		tr.log.Error("Failed to update title",
			zap.Error(err),
			zap.Int64("title_id", title.ID),
		)
		return fmt.Errorf("update title %d: %w", title.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("title %d not found", title.ID)
	}

	if replaceGenres {
		if _, err := tx.Exec(ctx, `DELETE FROM title_genres WHERE title_id = $1`, title.ID); err != nil {
			return fmt.Errorf("clear genres for title %d: %w", title.ID, err)
		}
		for _, genreID := range genreIDs {
			_, err := tx.Exec(ctx,
				`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`,
				title.ID, genreID,
			)
			if err != nil {
				return fmt.Errorf("link genre %d to title %d: %w", genreID, title.ID, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update title: %w", err)
	}

	return nil
}

// Delete reports whether a row was actually removed. Reviews, comments
// and genre links go with it via ON DELETE CASCADE.
func (tr *titleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := tr.db.Exec(ctx, `DELETE FROM titles WHERE id = $1`, id)
	if err != nil {
		tr.log.Error("Failed to delete title",
			zap.Error(err),
			zap.Int64("title_id", id),
		)
		return false, fmt.Errorf("delete title %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	tr.log.Info("Title deleted", zap.Int64("title_id", id))
	return true, nil
}

func (tr *titleRepository) GenresForTitle(ctx context.Context, titleID int64) ([]*entity.Genre, error) {
	query := `
		SELECT g.id, g.name, g.slug
		FROM genres g
		JOIN title_genres tg ON tg.genre_id = g.id
		WHERE tg.title_id = $1
		ORDER BY g.name
	`

	rows, err := tr.db.Query(ctx, query, titleID)
	if err != nil {
		tr.log.Error("Failed to load genres for title",
			zap.Error(err),
			zap.Int64("title_id", titleID),
		)
		return nil, fmt.Errorf("load genres for title %d: %w", titleID, err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.Slug); err != nil {
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}
