package adaptor

import (
	"net/http"

	"movie-api/internal/usecase"
	"movie-api/pkg/utils"

	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /genre/
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetGenres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get genres")
		return
	}

	utils.ResponseOK(w, genres)
}

// GetGenreByID handles GET /genre/{genreID}/
func (h *GenreHandler) GetGenreByID(w http.ResponseWriter, r *http.Request) {
	genreID, ok := pathID(r, "genreID")
	if !ok {
		utils.ResponseNotFound(w, notFoundMessage)
		return
	}

	genre, err := h.service.GetGenreByID(r.Context(), genreID)
	if err != nil {
		handleServiceError(w, h.log, err, "get genre by ID")
		return
	}

	utils.ResponseOK(w, genre)
}
