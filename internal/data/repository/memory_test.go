package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"movie-api/internal/data/entity"
	"movie-api/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedMemory(t *testing.T) (*Repository, *entity.Genre, *entity.Movie) {
	t.Helper()
	ctx := context.Background()
	repo := NewMemoryRepository(zap.NewNop())

	genre := &entity.Genre{Name: "Thriller"}
	require.NoError(t, repo.Genre.Create(ctx, genre))

	movie := &entity.Movie{Title: "Parasite", GenreID: genre.ID, ReleaseDate: time.Date(2019, 5, 30, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Movie.Create(ctx, movie))

	return repo, genre, movie
}

func TestMemoryRepository_AssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(zap.NewNop())

	for i := 1; i <= 3; i++ {
		g := &entity.Genre{Name: "g"}
		require.NoError(t, repo.Genre.Create(ctx, g))
		assert.EqualValues(t, i, g.ID)
	}

	genres, err := repo.Genre.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 3)
	assert.EqualValues(t, 1, genres[0].ID)
	assert.EqualValues(t, 3, genres[2].ID)
}

func TestMemoryRepository_FindByIDMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(zap.NewNop())

	g, err := repo.Genre.FindByID(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, g)

	m, err := repo.Movie.FindByID(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, m)

	r, err := repo.Review.FindByID(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, r)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo, genre, _ := seedMemory(t)

	found, err := repo.Genre.FindByID(ctx, genre.ID)
	require.NoError(t, err)
	found.Name = "mutated"

	again, err := repo.Genre.FindByID(ctx, genre.ID)
	require.NoError(t, err)
	assert.Equal(t, "Thriller", again.Name)
}

func TestMemoryRepository_ReferentialIntegrity(t *testing.T) {
	ctx := context.Background()
	repo, _, movie := seedMemory(t)

	err := repo.Movie.Create(ctx, &entity.Movie{Title: "orphan", GenreID: 999})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = repo.Review.Create(ctx, &entity.Review{MovieID: 999, Content: "x", Rating: 1})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	movie.GenreID = 999
	assert.ErrorIs(t, repo.Movie.Update(ctx, movie), apperr.ErrNotFound)

	reviews, err := repo.Review.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestMemoryRepository_ReviewUpdateKeepsMovie(t *testing.T) {
	ctx := context.Background()
	repo, _, movie := seedMemory(t)

	review := &entity.Review{MovieID: movie.ID, Content: "first", Rating: 3}
	require.NoError(t, repo.Review.Create(ctx, review))

	require.NoError(t, repo.Review.Update(ctx, &entity.Review{
		Base:    entity.Base{ID: review.ID},
		MovieID: 12345,
		Content: "second",
		Rating:  9,
	}))

	stored, err := repo.Review.FindByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, movie.ID, stored.MovieID)
	assert.Equal(t, "second", stored.Content)
	assert.Equal(t, 9, stored.Rating)

	assert.ErrorIs(t, repo.Review.Update(ctx, &entity.Review{Base: entity.Base{ID: 777}}), apperr.ErrNotFound)
}

func TestMemoryRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	repo, genre, movie := seedMemory(t)

	other := &entity.Genre{Name: "Drama"}
	require.NoError(t, repo.Genre.Create(ctx, other))
	keep := &entity.Movie{Title: "Burning", GenreID: other.ID}
	require.NoError(t, repo.Movie.Create(ctx, keep))

	require.NoError(t, repo.Review.Create(ctx, &entity.Review{MovieID: movie.ID, Content: "a", Rating: 5}))
	require.NoError(t, repo.Review.Create(ctx, &entity.Review{MovieID: keep.ID, Content: "b", Rating: 6}))

	require.NoError(t, repo.Genre.Delete(ctx, genre.ID))

	gone, err := repo.Movie.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	reviews, err := repo.Review.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, keep.ID, reviews[0].MovieID)

	assert.ErrorIs(t, repo.Genre.Delete(ctx, genre.ID), apperr.ErrNotFound)
	assert.ErrorIs(t, repo.Movie.Delete(ctx, movie.ID), apperr.ErrNotFound)
}

func TestMemoryRepository_FindByGenreAndMovie(t *testing.T) {
	ctx := context.Background()
	repo, genre, movie := seedMemory(t)

	other := &entity.Genre{Name: "Drama"}
	require.NoError(t, repo.Genre.Create(ctx, other))
	require.NoError(t, repo.Movie.Create(ctx, &entity.Movie{Title: "Burning", GenreID: other.ID}))

	movies, err := repo.Movie.FindByGenreID(ctx, genre.ID)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, movie.ID, movies[0].ID)

	empty, err := repo.Movie.FindByGenreID(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, repo.Review.Create(ctx, &entity.Review{MovieID: movie.ID, Content: "a", Rating: 5}))
	reviews, err := repo.Review.FindByMovieID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestMemoryRepository_ConcurrentReviewCreates(t *testing.T) {
	ctx := context.Background()
	repo, _, movie := seedMemory(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Review.Create(ctx, &entity.Review{MovieID: movie.ID, Content: "c", Rating: 7}))
		}()
	}
	wg.Wait()

	reviews, err := repo.Review.FindByMovieID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 50)
	assert.EqualValues(t, 50, reviews[49].ID)
}

func TestRepository_PingWithoutDB(t *testing.T) {
	repo := NewMemoryRepository(zap.NewNop())
	assert.NoError(t, repo.Ping(context.Background()))
}
