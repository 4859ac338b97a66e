package entity

import (
	"time"
)

// Movie belongs to exactly one Genre through GenreID.
type Movie struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Overview    string    `db:"overview"`
	ReleaseDate time.Time `db:"release_date"`
	PosterPath  string    `db:"poster_path"`
	Popularity  float64   `db:"popularity"`
	VoteAverage float64   `db:"vote_average"`
	GenreID     int64     `db:"genre_id"`
}
