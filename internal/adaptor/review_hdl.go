package adaptor

import (
	"net/http"

	"movie-api/internal/dto/response"
	"movie-api/internal/usecase"
	"movie-api/pkg/utils"

	"go.uber.org/zap"
)

// maxReviewBody bounds request bodies well above the 500 character content limit.
const maxReviewBody = 64 << 10

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /movies/{movieID}/reviews/
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(r, "movieID")
	if !ok {
		utils.ResponseNotFound(w, notFoundMessage)
		return
	}

	if err := h.service.CreateReview(r.Context(), movieID, http.MaxBytesReader(w, r.Body, maxReviewBody)); err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.MessageResponse{Message: response.MessageReviewCreated})
}

// UpdateReview handles PUT /reviews/{reviewID}/
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(r, "reviewID")
	if !ok {
		utils.ResponseNotFound(w, notFoundMessage)
		return
	}

	if err := h.service.UpdateReview(r.Context(), reviewID, http.MaxBytesReader(w, r.Body, maxReviewBody)); err != nil {
		handleServiceError(w, h.log, err, "update review")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.MessageResponse{Message: response.MessageReviewUpdated})
}

// DeleteReview handles DELETE /reviews/{reviewID}/
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(r, "reviewID")
	if !ok {
		utils.ResponseNotFound(w, notFoundMessage)
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID); err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.MessageResponse{Message: response.MessageReviewDeleted})
}
