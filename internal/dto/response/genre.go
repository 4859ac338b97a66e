package response

import "movie-api/internal/data/entity"

// GenreResponse is the summary shape used by the genre list.
type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GenreDetailResponse nests every movie of the genre.
type GenreDetailResponse struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Movies []MovieResponse `json:"movies"`
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID,
		Name: genre.Name,
	}
}

func GenresToResponse(genres []*entity.Genre) []GenreResponse {
	out := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		out[i] = GenreToResponse(genre)
	}
	return out
}

func GenreToDetailResponse(genre *entity.Genre, movies []*entity.Movie) GenreDetailResponse {
	return GenreDetailResponse{
		ID:     genre.ID,
		Name:   genre.Name,
		Movies: MoviesToResponse(movies),
	}
}
