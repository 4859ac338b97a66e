// main.go
package main

import (
	"context"
	"log"

	"movie-api/cmd"
	"movie-api/internal/data/fixture"
	"movie-api/internal/data/repository"
	"movie-api/internal/wire"
	"movie-api/pkg/database"
	"movie-api/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("driver", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Select storage backend
	var repos *repository.Repository
	switch config.Database.Driver {
	case utils.DriverMemory:
		repos = repository.NewMemoryRepository(logger)
		logger.Info("Using in-memory storage")
	default:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	}

	// Seed from fixture
	if config.App.SeedFile != "" {
		if _, err := fixture.LoadFile(context.Background(), config.App.SeedFile, repos, logger); err != nil {
			logger.Fatal("Failed to load seed file", zap.String("path", config.App.SeedFile), zap.Error(err))
		}
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config, logger); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}
}
