package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gregory413b/voicementor2/internal/config"
	blobadapter "github.com/gregory413b/voicementor2/internal/infrastructure/blobstore/adapter"
	queueadapter "github.com/gregory413b/voicementor2/internal/infrastructure/queue/adapter"
	"github.com/gregory413b/voicementor2/internal/logger"
	"github.com/gregory413b/voicementor2/internal/pkg/message/application/task"
)

// The worker drains background tasks, currently just audio-object cleanup
// after message deletes.
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

	store, err := blobadapter.NewFSStore(cfg.Blob.Dir)
	if err != nil {
		zl.Fatal("failed to open blob store", zap.Error(err))
	}

	srv, err := queueadapter.NewAsynqServer(cfg.Redis.URL, 5, zl)
	if err != nil {
		zl.Fatal("failed to start task server", zap.Error(err))
	}

	task.RegisterPurgeBlobTask(srv, store, zl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zl.Info("worker running")
	if err := srv.Run(ctx); err != nil {
		zl.Fatal("worker stopped with error", zap.Error(err))
	}
}
