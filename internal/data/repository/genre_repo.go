package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-api/internal/data/entity"
	"movie-api/pkg/apperr"
	"movie-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GenreRepository interface {
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	FindByID(ctx context.Context, id int64) (*entity.Genre, error)
	Create(ctx context.Context, genre *entity.Genre) error
	Update(ctx context.Context, genre *entity.Genre) error
	Delete(ctx context.Context, id int64) error
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	query := `SELECT id, name FROM genres ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all genres", zap.Error(err))
		return nil, fmt.Errorf("find genres: %w", err)
	}
	defer rows.Close()

	genres := []*entity.Genre{}
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}

func (r *genreRepository) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	query := `SELECT id, name FROM genres WHERE id = $1`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(&genre.ID, &genre.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.Int64("genre_id", id),
		)
		return nil, fmt.Errorf("find genre by id: %w", err)
	}

	return &genre, nil
}

func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	query := `INSERT INTO genres (name) VALUES ($1) RETURNING id`

	if err := r.db.QueryRow(ctx, query, genre.Name).Scan(&genre.ID); err != nil {
		r.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("name", genre.Name),
		)
		return fmt.Errorf("create genre: %w", err)
	}

	return nil
}

func (r *genreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	query := `UPDATE genres SET name = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, genre.ID, genre.Name)
	if err != nil {
		r.log.Error("Failed to update genre",
			zap.Error(err),
			zap.Int64("genre_id", genre.ID),
		)
		return fmt.Errorf("update genre: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFoundf("genre %d", genre.ID)
	}

	return nil
}

// Delete removes the genre; its movies and their reviews go with it
// through ON DELETE CASCADE.
func (r *genreRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM genres WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete genre",
			zap.Error(err),
			zap.Int64("genre_id", id),
		)
		return fmt.Errorf("delete genre: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFoundf("genre %d", id)
	}

	r.log.Info("Genre deleted", zap.Int64("genre_id", id))
	return nil
}
