package entity

import "time"

const (
	MinScore = 1
	MaxScore = 10
)

// Review carries a single user's verdict on a title. The pair
// (TitleID, AuthorID) is unique: one review per user per title.
type Review struct {
	ID        int64     `db:"id"`
	TitleID   int64     `db:"title_id"`
	AuthorID  int64     `db:"author_id"`
	Text      string    `db:"text"`
	Score     int       `db:"score"`
	CreatedAt time.Time `db:"created_at"`
}
