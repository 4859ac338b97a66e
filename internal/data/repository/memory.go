package repository

import (
	"context"
	"sort"
	"sync"

	"movie-api/internal/data/entity"
	"movie-api/pkg/apperr"

	"go.uber.org/zap"
)

// memoryStore backs all three in-memory repositories so foreign keys and
// cascades can be checked under one lock.
type memoryStore struct {
	mu      sync.RWMutex
	genres  map[int64]entity.Genre
	movies  map[int64]entity.Movie
	reviews map[int64]entity.Review

	lastGenreID  int64
	lastMovieID  int64
	lastReviewID int64
}

// NewMemoryRepository returns repositories backed by process memory with the
// same referential rules as the postgres schema.
func NewMemoryRepository(log *zap.Logger) *Repository {
	store := &memoryStore{
		genres:  make(map[int64]entity.Genre),
		movies:  make(map[int64]entity.Movie),
		reviews: make(map[int64]entity.Review),
	}

	return &Repository{
		Genre:  &memoryGenreRepository{store: store, log: log.With(zap.String("repository", "genre"))},
		Movie:  &memoryMovieRepository{store: store, log: log.With(zap.String("repository", "movie"))},
		Review: &memoryReviewRepository{store: store, log: log.With(zap.String("repository", "review"))},
	}
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// deleteMovieLocked removes a movie and its reviews. Caller holds mu.
func (s *memoryStore) deleteMovieLocked(id int64) {
	delete(s.movies, id)
	for reviewID, review := range s.reviews {
		if review.MovieID == id {
			delete(s.reviews, reviewID)
		}
	}
}

// ==================== GENRE ====================

type memoryGenreRepository struct {
	store *memoryStore
	log   *zap.Logger
}

func (r *memoryGenreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	genres := make([]*entity.Genre, 0, len(r.store.genres))
	for _, id := range sortedKeys(r.store.genres) {
		genre := r.store.genres[id]
		genres = append(genres, &genre)
	}
	return genres, nil
}

func (r *memoryGenreRepository) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	genre, ok := r.store.genres[id]
	if !ok {
		return nil, nil
	}
	return &genre, nil
}

func (r *memoryGenreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.lastGenreID++
	genre.ID = r.store.lastGenreID
	r.store.genres[genre.ID] = *genre
	return nil
}

func (r *memoryGenreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.genres[genre.ID]; !ok {
		return apperr.NotFoundf("genre %d", genre.ID)
	}
	r.store.genres[genre.ID] = *genre
	return nil
}

func (r *memoryGenreRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.genres[id]; !ok {
		return apperr.NotFoundf("genre %d", id)
	}

	delete(r.store.genres, id)
	for movieID, movie := range r.store.movies {
		if movie.GenreID == id {
			r.store.deleteMovieLocked(movieID)
		}
	}

	r.log.Info("Genre deleted", zap.Int64("genre_id", id))
	return nil
}

// ==================== MOVIE ====================

type memoryMovieRepository struct {
	store *memoryStore
	log   *zap.Logger
}

func (r *memoryMovieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	return r.filter(func(entity.Movie) bool { return true }), nil
}

func (r *memoryMovieRepository) FindByGenreID(ctx context.Context, genreID int64) ([]*entity.Movie, error) {
	return r.filter(func(m entity.Movie) bool { return m.GenreID == genreID }), nil
}

func (r *memoryMovieRepository) filter(keep func(entity.Movie) bool) []*entity.Movie {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	movies := []*entity.Movie{}
	for _, id := range sortedKeys(r.store.movies) {
		movie := r.store.movies[id]
		if keep(movie) {
			movies = append(movies, &movie)
		}
	}
	return movies
}

func (r *memoryMovieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	movie, ok := r.store.movies[id]
	if !ok {
		return nil, nil
	}
	return &movie, nil
}

func (r *memoryMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.genres[movie.GenreID]; !ok {
		return apperr.NotFoundf("create movie: genre %d", movie.GenreID)
	}

	r.store.lastMovieID++
	movie.ID = r.store.lastMovieID
	r.store.movies[movie.ID] = *movie
	return nil
}

func (r *memoryMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.movies[movie.ID]; !ok {
		return apperr.NotFoundf("movie %d", movie.ID)
	}
	if _, ok := r.store.genres[movie.GenreID]; !ok {
		return apperr.NotFoundf("update movie: genre %d", movie.GenreID)
	}

	r.store.movies[movie.ID] = *movie
	return nil
}

func (r *memoryMovieRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.movies[id]; !ok {
		return apperr.NotFoundf("movie %d", id)
	}
	r.store.deleteMovieLocked(id)

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

// ==================== REVIEW ====================

type memoryReviewRepository struct {
	store *memoryStore
	log   *zap.Logger
}

func (r *memoryReviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	return r.filter(func(entity.Review) bool { return true }), nil
}

func (r *memoryReviewRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	return r.filter(func(rv entity.Review) bool { return rv.MovieID == movieID }), nil
}

func (r *memoryReviewRepository) filter(keep func(entity.Review) bool) []*entity.Review {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reviews := []*entity.Review{}
	for _, id := range sortedKeys(r.store.reviews) {
		review := r.store.reviews[id]
		if keep(review) {
			reviews = append(reviews, &review)
		}
	}
	return reviews
}

func (r *memoryReviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	review, ok := r.store.reviews[id]
	if !ok {
		return nil, nil
	}
	return &review, nil
}

func (r *memoryReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.movies[review.MovieID]; !ok {
		return apperr.NotFoundf("create review: movie %d", review.MovieID)
	}

	r.store.lastReviewID++
	review.ID = r.store.lastReviewID
	r.store.reviews[review.ID] = *review
	return nil
}

func (r *memoryReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.reviews[review.ID]
	if !ok {
		return apperr.NotFoundf("review %d", review.ID)
	}

	stored.Content = review.Content
	stored.Rating = review.Rating
	stored.UpdatedAt = review.UpdatedAt
	r.store.reviews[review.ID] = stored
	return nil
}

func (r *memoryReviewRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.reviews[id]; !ok {
		return apperr.NotFoundf("review %d", id)
	}
	delete(r.store.reviews, id)

	r.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}
