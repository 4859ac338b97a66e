package middleware

import (
	"net/http"
	"time"

	"movie-api/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimitByIP limits each client IP to requests per window. A non-positive
// limit disables it.
func RateLimitByIP(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseJSON(w, http.StatusTooManyRequests, false, "Request was throttled.", nil, nil)
		}),
	)
}
