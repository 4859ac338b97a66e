package usecase

import (
	"context"
	"testing"
	"time"

	"movie-api/internal/data/entity"
	"movie-api/internal/data/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	repo     *repository.Repository
	thriller *entity.Genre
	drama    *entity.Genre
	parasite *entity.Movie
	oldboy   *entity.Movie
	burning  *entity.Movie
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewMemoryRepository(zap.NewNop())

	f := &fixture{
		repo:     repo,
		thriller: &entity.Genre{Name: "Thriller"},
		drama:    &entity.Genre{Name: "Drama"},
	}
	require.NoError(t, repo.Genre.Create(ctx, f.thriller))
	require.NoError(t, repo.Genre.Create(ctx, f.drama))

	day := time.Date(2019, 5, 30, 0, 0, 0, 0, time.UTC)
	f.parasite = &entity.Movie{Title: "Parasite", GenreID: f.thriller.ID, ReleaseDate: day, VoteAverage: 8.5}
	f.oldboy = &entity.Movie{Title: "Oldboy", GenreID: f.thriller.ID, ReleaseDate: day, VoteAverage: 8.4}
	f.burning = &entity.Movie{Title: "Burning", GenreID: f.drama.ID, ReleaseDate: day, VoteAverage: 7.5}
	for _, m := range []*entity.Movie{f.parasite, f.oldboy, f.burning} {
		require.NoError(t, repo.Movie.Create(ctx, m))
	}

	return f
}
