package adaptor

import (
	"errors"
	"net/http"

	"movie-api/internal/usecase"
	"movie-api/pkg/apperr"
	"movie-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const notFoundMessage = "Not found."

type Handler struct {
	Genre  *GenreHandler
	Movie  *MovieHandler
	Review *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Genre:  NewGenreHandler(service.Genre, log),
		Movie:  NewMovieHandler(service.Movie, log),
		Review: NewReviewHandler(service.Review, log),
	}
}

// pathID reads an integer route parameter. Values that are not a positive
// int64 are treated the same as an id that does not exist.
func pathID(r *http.Request, key string) (int64, bool) {
	return utils.ParseID(chi.URLParam(r, key))
}

// handleServiceError maps the apperr taxonomy to HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *apperr.ValidationError

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, notFoundMessage)

	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, apperr.ErrValidation):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// NotFound is the router-level fallback for unknown paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.ResponseNotFound(w, notFoundMessage)
}

// MethodNotAllowed is the router-level fallback for a known path with the wrong verb.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMethodNotAllowed(w, "Method \""+r.Method+"\" not allowed.")
}
