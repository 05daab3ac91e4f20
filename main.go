package main

import (
	"context"
	"log"
	"time"

	"movie-reviews/cmd"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/sentiment"
	"movie-reviews/internal/wire"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("environment", config.App.Environment),
	)

	// Apply schema migrations
	if err := database.Migrate(config.Database.URL, logger); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)
	tokens := utils.NewTokenManager(config.JWT)
	analyzer := sentiment.NewClient(config.Inference.Host, config.Inference.Timeout, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, tokens, analyzer, config, logger)

	if config.App.SeedOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := app.Service.Seed.Seed(ctx)
		cancel()
		if err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
