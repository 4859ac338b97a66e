package usecase

import (
	"context"
	"fmt"

	"movie-api/internal/data/repository"
	"movie-api/internal/dto/response"
	"movie-api/pkg/apperr"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Debug("Movies retrieved", zap.Int("count", len(movies)))
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	if movie == nil {
		return nil, apperr.NotFoundf("movie %d", movieID)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}
