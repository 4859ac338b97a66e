package usecase

import (
	"context"
	"testing"

	"movie-api/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenreService_GetGenres(t *testing.T) {
	f := newFixture(t)
	svc := NewGenreService(f.repo, zap.NewNop())

	genres, err := svc.GetGenres(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Thriller", genres[0].Name)
	assert.Equal(t, "Drama", genres[1].Name)
}

func TestGenreService_GetGenreByID_NestsExactlyItsMovies(t *testing.T) {
	f := newFixture(t)
	svc := NewGenreService(f.repo, zap.NewNop())

	detail, err := svc.GetGenreByID(context.Background(), f.thriller.ID)
	require.NoError(t, err)

	assert.Equal(t, f.thriller.ID, detail.ID)
	require.Len(t, detail.Movies, 2)
	for _, m := range detail.Movies {
		assert.Equal(t, f.thriller.ID, m.Genre)
	}
	assert.Equal(t, f.parasite.ID, detail.Movies[0].ID)
	assert.Equal(t, f.oldboy.ID, detail.Movies[1].ID)
}

func TestGenreService_GetGenreByID_NoMovies(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.repo.Movie.Delete(context.Background(), f.burning.ID))
	svc := NewGenreService(f.repo, zap.NewNop())

	detail, err := svc.GetGenreByID(context.Background(), f.drama.ID)
	require.NoError(t, err)
	assert.NotNil(t, detail.Movies)
	assert.Empty(t, detail.Movies)
}

func TestGenreService_GetGenreByID_NotFound(t *testing.T) {
	f := newFixture(t)
	svc := NewGenreService(f.repo, zap.NewNop())

	_, err := svc.GetGenreByID(context.Background(), 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
