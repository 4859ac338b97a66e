package wire

import (
	"context"
	"net/http"
	"time"

	"movie-api/internal/adaptor"
	"movie-api/internal/data/repository"
	"movie-api/internal/usecase"
	"movie-api/pkg/middleware"
	"movie-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the assembled HTTP router.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the route table on top of repo.
// Metrics are registered on reg and exposed at /metrics when gatherer is non-nil.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger, reg prometheus.Registerer, gatherer prometheus.Gatherer) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger, middleware.NewMetrics(reg), gatherer)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
	metrics *middleware.Metrics,
	gatherer prometheus.Gatherer,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.HTTP.CORSAllowedOrigins))
	r.Use(metrics.Handler)

	r.NotFound(adaptor.NotFound)
	r.MethodNotAllowed(adaptor.MethodNotAllowed)

	wireGenre(r, handler.Genre)
	wireMovie(r, handler.Movie)
	wireReview(r, handler.Review, config)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := repo.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseServiceUnavailable(w, "Database unavailable")
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
