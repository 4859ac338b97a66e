package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"movie-api/pkg/utils"

	"go.uber.org/zap"
)

// APIServer serves route until SIGINT/SIGTERM, then drains in-flight requests
// for at most ShutdownTimeout.
func APIServer(route http.Handler, config *utils.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Serve(ctx, newServer(route, config), config, logger)
}

func newServer(route http.Handler, config *utils.Config) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", config.App.Port),
		Handler:      route,
		ReadTimeout:  config.HTTP.ReadTimeout,
		WriteTimeout: config.HTTP.WriteTimeout,
		IdleTimeout:  2 * config.HTTP.ReadTimeout,
	}
}

// Serve runs srv until ctx is cancelled.
func Serve(ctx context.Context, srv *http.Server, config *utils.Config, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", zap.Duration("timeout", config.HTTP.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
