package fixture

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"movie-api/internal/data/entity"
	"movie-api/internal/data/repository"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	modelGenre  = "movies.genre"
	modelMovie  = "movies.movie"
	modelReview = "movies.review"

	dateLayout = "2006-01-02"
	// dumpdata writes datetimes without an offset when USE_TZ is off.
	naiveLayout = "2006-01-02T15:04:05.999999999"
)

// Record is one entry of a dumpdata-style fixture file.
type Record struct {
	Model  string          `json:"model"`
	PK     int64           `json:"pk"`
	Fields json.RawMessage `json:"fields"`
}

type genreFields struct {
	Name string `json:"name"`
}

type movieFields struct {
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
	Genre       int64   `json:"genre"`
}

type reviewFields struct {
	Movie     int64  `json:"movie"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Summary counts what a load inserted.
type Summary struct {
	Genres  int
	Movies  int
	Reviews int
	Skipped int
}

// LoadFile opens path and seeds repo from it.
func LoadFile(ctx context.Context, path string, repo *repository.Repository, log *zap.Logger) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	return Load(ctx, f, repo, log.With(zap.String("fixture", path)))
}

// Load inserts genres, then movies, then reviews regardless of their order in
// the file. Fixture pks only link records to each other; stored ids are
// assigned by the repository.
func Load(ctx context.Context, r io.Reader, repo *repository.Repository, log *zap.Logger) (Summary, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return Summary{}, fmt.Errorf("decode fixture: %w", err)
	}

	var summary Summary
	byModel := make(map[string][]Record)
	for _, rec := range records {
		switch rec.Model {
		case modelGenre, modelMovie, modelReview:
			byModel[rec.Model] = append(byModel[rec.Model], rec)
		default:
			summary.Skipped++
			log.Warn("Skipping fixture record with unknown model",
				zap.String("model", rec.Model),
				zap.Int64("pk", rec.PK),
			)
		}
	}

	genreIDs := make(map[int64]int64, len(byModel[modelGenre]))
	for _, rec := range byModel[modelGenre] {
		var fields genreFields
		if err := decodeFields(rec, &fields); err != nil {
			return summary, err
		}

		genre := &entity.Genre{Name: fields.Name}
		if err := repo.Genre.Create(ctx, genre); err != nil {
			return summary, fmt.Errorf("%s pk=%d: %w", rec.Model, rec.PK, err)
		}
		genreIDs[rec.PK] = genre.ID
		summary.Genres++
	}

	movieIDs := make(map[int64]int64, len(byModel[modelMovie]))
	for _, rec := range byModel[modelMovie] {
		var fields movieFields
		if err := decodeFields(rec, &fields); err != nil {
			return summary, err
		}

		genreID, ok := genreIDs[fields.Genre]
		if !ok {
			return summary, fmt.Errorf("%s pk=%d: unknown genre %d", rec.Model, rec.PK, fields.Genre)
		}

		var releaseDate time.Time
		if fields.ReleaseDate != "" {
			d, err := time.Parse(dateLayout, fields.ReleaseDate)
			if err != nil {
				return summary, fmt.Errorf("%s pk=%d: release_date: %w", rec.Model, rec.PK, err)
			}
			releaseDate = d
		}

		movie := &entity.Movie{
			Title:       fields.Title,
			Overview:    fields.Overview,
			ReleaseDate: releaseDate,
			PosterPath:  fields.PosterPath,
			Popularity:  fields.Popularity,
			VoteAverage: fields.VoteAverage,
			GenreID:     genreID,
		}
		if err := repo.Movie.Create(ctx, movie); err != nil {
			return summary, fmt.Errorf("%s pk=%d: %w", rec.Model, rec.PK, err)
		}
		movieIDs[rec.PK] = movie.ID
		summary.Movies++
	}

	now := time.Now()
	for _, rec := range byModel[modelReview] {
		var fields reviewFields
		if err := decodeFields(rec, &fields); err != nil {
			return summary, err
		}

		movieID, ok := movieIDs[fields.Movie]
		if !ok {
			return summary, fmt.Errorf("%s pk=%d: unknown movie %d", rec.Model, rec.PK, fields.Movie)
		}

		createdAt, err := parseTimestamp(fields.CreatedAt, now)
		if err != nil {
			return summary, fmt.Errorf("%s pk=%d: created_at: %w", rec.Model, rec.PK, err)
		}
		updatedAt, err := parseTimestamp(fields.UpdatedAt, createdAt)
		if err != nil {
			return summary, fmt.Errorf("%s pk=%d: updated_at: %w", rec.Model, rec.PK, err)
		}

		review := &entity.Review{
			Base:    entity.Base{CreatedAt: createdAt, UpdatedAt: updatedAt},
			MovieID: movieID,
			Content: fields.Content,
			Rating:  fields.Rating,
		}
		if err := repo.Review.Create(ctx, review); err != nil {
			return summary, fmt.Errorf("%s pk=%d: %w", rec.Model, rec.PK, err)
		}
		summary.Reviews++
	}

	log.Info("Fixture loaded",
		zap.Int("genres", summary.Genres),
		zap.Int("movies", summary.Movies),
		zap.Int("reviews", summary.Reviews),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

func decodeFields(rec Record, v any) error {
	if len(rec.Fields) == 0 {
		return fmt.Errorf("%s pk=%d: missing fields", rec.Model, rec.PK)
	}
	if err := json.Unmarshal(rec.Fields, v); err != nil {
		return fmt.Errorf("%s pk=%d: %w", rec.Model, rec.PK, err)
	}
	return nil
}

func parseTimestamp(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}
	if naive, naiveErr := time.Parse(naiveLayout, value); naiveErr == nil {
		return naive, nil
	}
	return time.Time{}, err
}
