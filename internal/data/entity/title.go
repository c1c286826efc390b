package entity

type Title struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Year        int     `db:"year"`
	Description *string `db:"description"`
	CategoryID  *int64  `db:"category_id"`
}

// TitleWithRating is the read-side projection: a title joined with its
// computed average review score. Rating is nil when no reviews exist.
type TitleWithRating struct {
	Title
	Rating *float64 `db:"rating"`
}
