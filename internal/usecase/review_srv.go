package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"movie-api/internal/data/entity"
	"movie-api/internal/data/repository"
	"movie-api/internal/dto/request"
	"movie-api/pkg/apperr"

	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, movieID int64, body io.Reader) error
	UpdateReview(ctx context.Context, reviewID int64, body io.Reader) error
	DeleteReview(ctx context.Context, reviewID int64) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
		now:  time.Now,
	}
}

// CreateReview attaches a new review to movieID. The movie is resolved before
// body is read, so an unknown movie is NotFound whatever the payload.
func (s *reviewService) CreateReview(ctx context.Context, movieID int64, body io.Reader) error {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to check movie existence",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return apperr.NotFoundf("movie %d", movieID)
	}

	req, err := decodeReview(body)
	if err != nil {
		s.log.Warn("Create review validation failed",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return err
	}

	now := s.now()
	review := &entity.Review{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID: movieID,
		Content: req.Content,
		Rating:  req.Rating,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("movie_id", movieID),
		zap.Int("rating", review.Rating),
	)

	return nil
}

// UpdateReview fully replaces content and rating. The review id and its
// movie never change.
func (s *reviewService) UpdateReview(ctx context.Context, reviewID int64, body io.Reader) error {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("Failed to find review",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return apperr.NotFoundf("review %d", reviewID)
	}

	req, err := decodeReview(body)
	if err != nil {
		s.log.Warn("Update review validation failed",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return err
	}

	review.Content = req.Content
	review.Rating = req.Rating
	review.UpdatedAt = s.now()

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.Int64("review_id", reviewID),
		zap.Int64("movie_id", review.MovieID),
	)

	return nil
}

func decodeReview(body io.Reader) (*request.ReviewRequest, error) {
	req, err := request.DecodeReviewRequest(body)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID int64) error {
	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			s.log.Error("Failed to delete review",
				zap.Error(err),
				zap.Int64("review_id", reviewID),
			)
		}
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.Int64("review_id", reviewID))
	return nil
}
