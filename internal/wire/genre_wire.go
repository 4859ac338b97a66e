package wire

import (
	"movie-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	// GET /genre/ - genre summaries
	r.Get("/genre/", genreHandler.GetGenres)

	// GET /genre/{id}/ - genre with its movies
	r.Get("/genre/{genreID:[0-9]+}/", genreHandler.GetGenreByID)
}
