package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/existflow/ironplan/internal/config"
	"github.com/existflow/ironplan/internal/logger"
	"github.com/existflow/ironplan/internal/store"
	"github.com/existflow/ironplan/server"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Source = config.SourceConfig{Driver: store.DriverPostgres, DSN: dbURL}
	}

	logConfig := cfg.Logger()
	logConfig.Console = true
	if err := logger.Init(logConfig); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := store.OpenCatalog(ctx, cfg.Source.Driver, cfg.Source.DSN)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	srv := server.New(catalog, server.Options{Widget: cfg.Widget})

	logger.Info("IronPlan server starting",
		logger.F("port", port),
		logger.F("driver", cfg.Source.Driver))
	if err := srv.Run(ctx, ":"+port); err != nil {
		logger.Error("Server failed", logger.F("error", err))
		log.Fatalf("Server failed: %v", err)
	}
	logger.Info("IronPlan server stopped")
}
