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

type MovieRepository interface {
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindByGenreID(ctx context.Context, genreID int64) ([]*entity.Movie, error)
	Create(ctx context.Context, movie *entity.Movie) error
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, overview, release_date, poster_path, popularity, vote_average, genre_id`

func scanMovie(row rowScanner, movie *entity.Movie) error {
	return row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Overview,
		&movie.ReleaseDate,
		&movie.PosterPath,
		&movie.Popularity,
		&movie.VoteAverage,
		&movie.GenreID,
	)
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("find movies: %w", err)
	}

	return r.collect(rows)
}

func (r *movieRepository) FindByGenreID(ctx context.Context, genreID int64) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE genre_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, genreID)
	if err != nil {
		r.log.Error("Failed to find movies by genre ID",
			zap.Error(err),
			zap.Int64("genre_id", genreID),
		)
		return nil, fmt.Errorf("find movies by genre id: %w", err)
	}

	return r.collect(rows)
}

func (r *movieRepository) collect(rows pgx.Rows) ([]*entity.Movie, error) {
	defer rows.Close()

	movies := []*entity.Movie{}
	for rows.Next() {
		var movie entity.Movie
		if err := scanMovie(rows, &movie); err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))
	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	var movie entity.Movie
	err := scanMovie(r.db.QueryRow(ctx, query, id), &movie)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, overview, release_date, poster_path,
		                    popularity, vote_average, genre_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Overview,
		movie.ReleaseDate,
		movie.PosterPath,
		movie.Popularity,
		movie.VoteAverage,
		movie.GenreID,
	).Scan(&movie.ID)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
			zap.Int64("genre_id", movie.GenreID),
		)
		return fmt.Errorf("create movie: %w", apperr.FromPg(err))
	}

	return nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, overview = $3, release_date = $4, poster_path = $5,
		    popularity = $6, vote_average = $7, genre_id = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Overview,
		movie.ReleaseDate,
		movie.PosterPath,
		movie.Popularity,
		movie.VoteAverage,
		movie.GenreID,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie: %w", apperr.FromPg(err))
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFoundf("movie %d", movie.ID)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFoundf("movie %d", id)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}
