package usecase

import (
	"movie-api/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Genre  GenreService
	Movie  MovieService
	Review ReviewService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Genre:  NewGenreService(repo, log),
		Movie:  NewMovieService(repo, log),
		Review: NewReviewService(repo, log),
	}
}
