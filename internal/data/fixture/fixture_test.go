package fixture

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"movie-api/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const sampleFixture = `[
  {"model": "movies.review", "pk": 1, "fields": {"movie": 20, "content": "명작", "rating": 10, "created_at": "2021-03-01T09:30:00.123Z", "updated_at": "2021-03-02T10:00:00Z"}},
  {"model": "movies.movie", "pk": 20, "fields": {"title": "Parasite", "overview": "", "release_date": "2019-05-30", "poster_path": "/p.jpg", "popularity": 41.2, "vote_average": 8.5, "genre": 7}},
  {"model": "movies.movie", "pk": 21, "fields": {"title": "Burning", "release_date": "2018-05-17", "vote_average": 7.5, "genre": 8}},
  {"model": "movies.genre", "pk": 7, "fields": {"name": "Thriller"}},
  {"model": "movies.genre", "pk": 8, "fields": {"name": "Drama"}},
  {"model": "auth.user", "pk": 1, "fields": {"username": "admin"}}
]`

func TestLoad_RemapsPrimaryKeys(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository(zap.NewNop())
	core, logs := observer.New(zap.WarnLevel)

	summary, err := Load(ctx, strings.NewReader(sampleFixture), repo, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, Summary{Genres: 2, Movies: 2, Reviews: 1, Skipped: 1}, summary)
	assert.Equal(t, 1, logs.FilterMessage("Skipping fixture record with unknown model").Len())

	genres, err := repo.Genre.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Thriller", genres[0].Name)

	thrillers, err := repo.Movie.FindByGenreID(ctx, genres[0].ID)
	require.NoError(t, err)
	require.Len(t, thrillers, 1)
	parasite := thrillers[0]
	assert.Equal(t, "Parasite", parasite.Title)
	assert.Equal(t, time.Date(2019, 5, 30, 0, 0, 0, 0, time.UTC), parasite.ReleaseDate)
	assert.Equal(t, 41.2, parasite.Popularity)

	reviews, err := repo.Review.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, parasite.ID, reviews[0].MovieID)
	assert.Equal(t, 10, reviews[0].Rating)
	assert.Equal(t, time.Date(2021, 3, 1, 9, 30, 0, 123000000, time.UTC), reviews[0].CreatedAt)
	assert.Equal(t, time.Date(2021, 3, 2, 10, 0, 0, 0, time.UTC), reviews[0].UpdatedAt)
}

func TestLoad_NaiveTimestamps(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository(zap.NewNop())

	fixture := `[
		{"model": "movies.genre", "pk": 1, "fields": {"name": "Drama"}},
		{"model": "movies.movie", "pk": 1, "fields": {"title": "Burning", "genre": 1}},
		{"model": "movies.review", "pk": 1, "fields": {"movie": 1, "content": "x", "rating": 4, "created_at": "2020-01-01T00:00:00.123", "updated_at": "2020-01-02T08:15:00"}}
	]`

	_, err := Load(ctx, strings.NewReader(fixture), repo, zap.NewNop())
	require.NoError(t, err)

	reviews, err := repo.Review.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 123000000, time.UTC), reviews[0].CreatedAt)
	assert.Equal(t, time.Date(2020, 1, 2, 8, 15, 0, 0, time.UTC), reviews[0].UpdatedAt)

	bad := `[
		{"model": "movies.genre", "pk": 1, "fields": {"name": "Drama"}},
		{"model": "movies.movie", "pk": 1, "fields": {"title": "Burning", "genre": 1}},
		{"model": "movies.review", "pk": 1, "fields": {"movie": 1, "content": "x", "rating": 4, "created_at": "yesterday"}}
	]`
	_, err = Load(ctx, strings.NewReader(bad), repository.NewMemoryRepository(zap.NewNop()), zap.NewNop())
	assert.ErrorContains(t, err, "created_at")
}

func TestLoad_DanglingReferenceFails(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		wantErr string
	}{
		{
			name:    "movie without genre",
			fixture: `[{"model": "movies.movie", "pk": 1, "fields": {"title": "x", "genre": 3}}]`,
			wantErr: "unknown genre 3",
		},
		{
			name: "review without movie",
			fixture: `[
				{"model": "movies.genre", "pk": 1, "fields": {"name": "g"}},
				{"model": "movies.review", "pk": 1, "fields": {"movie": 9, "content": "x", "rating": 1}}
			]`,
			wantErr: "unknown movie 9",
		},
		{
			name:    "bad date",
			fixture: `[{"model": "movies.genre", "pk": 1, "fields": {"name": "g"}}, {"model": "movies.movie", "pk": 1, "fields": {"title": "x", "genre": 1, "release_date": "30/05/2019"}}]`,
			wantErr: "release_date",
		},
		{
			name:    "missing fields",
			fixture: `[{"model": "movies.genre", "pk": 1}]`,
			wantErr: "missing fields",
		},
		{
			name:    "not an array",
			fixture: `{"model": "movies.genre"}`,
			wantErr: "decode fixture",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMemoryRepository(zap.NewNop())
			_, err := Load(context.Background(), strings.NewReader(tt.fixture), repo, zap.NewNop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleFixture), 0o644))

	repo := repository.NewMemoryRepository(zap.NewNop())
	summary, err := LoadFile(context.Background(), path, repo, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Movies)

	_, err = LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"), repo, zap.NewNop())
	assert.ErrorContains(t, err, "open fixture")
}
