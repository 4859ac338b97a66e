package repository

import (
	"context"

	"movie-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Genre  GenreRepository
	Movie  MovieRepository
	Review ReviewRepository

	db database.PgxIface
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Genre:  NewGenreRepository(db, log),
		Movie:  NewMovieRepository(db, log),
		Review: NewReviewRepository(db, log),
		db:     db,
	}
}

// Ping reports whether the backing store is reachable. The in-memory store
// is always reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.Ping(ctx)
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
