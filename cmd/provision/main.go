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
	"github.com/gregory413b/voicementor2/internal/pkg/identity/application/usecase"
	identityAdapter "github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/adapter"
)

// Provisions the configured training-director profile. Idempotent; run it as
// often as you like.
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

	if cfg.Admin.ID == "" || cfg.Admin.Name == "" {
		zl.Fatal("ADMIN_ID and ADMIN_NAME must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	uc := usecase.NewEnsureAdminUseCase(identityAdapter.NewPgProfileRepository(pool))
	if err := uc.Execute(ctx, usecase.EnsureAdminInput{ID: cfg.Admin.ID, DisplayName: cfg.Admin.Name}); err != nil {
		zl.Fatal("failed to provision admin profile", zap.Error(err))
	}
	zl.Info("admin profile ensured", zap.String("id", cfg.Admin.ID))
}
