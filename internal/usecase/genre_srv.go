package usecase

import (
	"context"
	"fmt"

	"movie-api/internal/data/repository"
	"movie-api/internal/dto/response"
	"movie-api/pkg/apperr"

	"go.uber.org/zap"
)

type GenreService interface {
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetGenreByID(ctx context.Context, genreID int64) (*response.GenreDetailResponse, error)
}

type genreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGenreService(repo *repository.Repository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get genres", zap.Error(err))
		return nil, fmt.Errorf("get genres: %w", err)
	}

	s.log.Debug("Genres retrieved", zap.Int("count", len(genres)))
	return response.GenresToResponse(genres), nil
}

// GetGenreByID returns the genre with exactly the movies that reference it.
func (s *genreService) GetGenreByID(ctx context.Context, genreID int64) (*response.GenreDetailResponse, error) {
	genre, err := s.repo.Genre.FindByID(ctx, genreID)
	if err != nil {
		s.log.Error("Failed to get genre by ID",
			zap.Error(err),
			zap.Int64("genre_id", genreID),
		)
		return nil, fmt.Errorf("get genre by id: %w", err)
	}

	if genre == nil {
		return nil, apperr.NotFoundf("genre %d", genreID)
	}

	movies, err := s.repo.Movie.FindByGenreID(ctx, genre.ID)
	if err != nil {
		s.log.Error("Failed to get movies for genre",
			zap.Error(err),
			zap.Int64("genre_id", genreID),
		)
		return nil, fmt.Errorf("get movies for genre: %w", err)
	}

	s.log.Debug("Genre retrieved",
		zap.Int64("genre_id", genreID),
		zap.String("name", genre.Name),
		zap.Int("movie_count", len(movies)),
	)

	detail := response.GenreToDetailResponse(genre, movies)
	return &detail, nil
}
