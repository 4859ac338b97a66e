package entity

// Review is tied to one Movie. MovieID is set on creation and never changes.
type Review struct {
	Base
	MovieID int64  `db:"movie_id"`
	Content string `db:"content"`
	Rating  int    `db:"rating"` // 1-10
}
