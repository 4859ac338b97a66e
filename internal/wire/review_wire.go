package wire

import (
	"movie-api/internal/adaptor"
	"movie-api/pkg/middleware"
	"movie-api/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, config *utils.Config) {
	// Writes are limited per client IP; reads are not.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitByIP(config.HTTP.RateLimitRequests, config.HTTP.RateLimitWindow))

		// POST /movies/{id}/reviews/ - create a review for the movie
		r.Post("/movies/{movieID:[0-9]+}/reviews/", reviewHandler.CreateReview)

		// PUT /reviews/{id}/ - replace content and rating
		r.Put("/reviews/{reviewID:[0-9]+}/", reviewHandler.UpdateReview)

		// DELETE /reviews/{id}/
		r.Delete("/reviews/{reviewID:[0-9]+}/", reviewHandler.DeleteReview)
	})
}
