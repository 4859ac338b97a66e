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

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]*entity.Review, error)
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error)
	Create(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int64) error
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

const reviewColumns = `id, movie_id, content, rating, created_at, updated_at`

func scanReview(row rowScanner, review *entity.Review) error {
	return row.Scan(
		&review.ID,
		&review.MovieID,
		&review.Content,
		&review.Rating,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all reviews", zap.Error(err))
		return nil, fmt.Errorf("find reviews: %w", err)
	}

	return r.collect(rows)
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE movie_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find reviews by movie ID %d: %w", movieID, err)
	}

	return r.collect(rows)
}

func (r *reviewRepository) collect(rows pgx.Rows) ([]*entity.Review, error) {
	defer rows.Close()

	reviews := []*entity.Review{}
	for rows.Next() {
		var review entity.Review
		if err := scanReview(rows, &review); err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	var review entity.Review
	err := scanReview(r.db.QueryRow(ctx, query, id), &review)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %d: %w", id, err)
	}

	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (movie_id, content, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		review.MovieID,
		review.Content,
		review.Rating,
		review.CreatedAt,
		review.UpdatedAt,
	).Scan(&review.ID)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %d: %w", review.MovieID, apperr.FromPg(err))
	}

	return nil
}

// Update replaces content and rating. movie_id is immutable.
func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET content = $2, rating = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Content,
		review.Rating,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", review.ID),
		)
		return fmt.Errorf("update review %d: %w", review.ID, err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFoundf("review %d", review.ID)
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("delete review %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFoundf("review %d", id)
	}

	r.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}
