package wire

import (
	"movie-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Get("/movies/", movieHandler.GetMovies)
	r.Get("/movies/{movieID:[0-9]+}/", movieHandler.GetMovieByID)
}
