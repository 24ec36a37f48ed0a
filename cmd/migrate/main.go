package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gregory413b/voicementor2/internal/config"
	"github.com/gregory413b/voicementor2/internal/infrastructure/database"
	"github.com/gregory413b/voicementor2/internal/logger"
)

// Applies the embedded schema migrations and exits.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.Migrate(ctx, cfg.Database.URL, 30*time.Second); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}
	zl.Info("migrations applied")
}
