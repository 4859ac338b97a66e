package response

import (
	"movie-api/internal/data/entity"
)

const dateLayout = "2006-01-02"

// MovieResponse is flat for both list and detail; genre is the genre id.
type MovieResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
	Genre       int64   `json:"genre"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Overview:    movie.Overview,
		ReleaseDate: movie.ReleaseDate.Format(dateLayout),
		PosterPath:  movie.PosterPath,
		Popularity:  movie.Popularity,
		VoteAverage: movie.VoteAverage,
		Genre:       movie.GenreID,
	}
}

// MoviesToResponse never returns nil so an empty list encodes as [].
func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
