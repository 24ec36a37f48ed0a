package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	v1 "github.com/gregory413b/voicementor2/cmd/api/router/v1"
	"github.com/gregory413b/voicementor2/internal/config"
	blobadapter "github.com/gregory413b/voicementor2/internal/infrastructure/blobstore/adapter"
	cacheadapter "github.com/gregory413b/voicementor2/internal/infrastructure/cache/adapter"
	cacheport "github.com/gregory413b/voicementor2/internal/infrastructure/cache/port"
	"github.com/gregory413b/voicementor2/internal/infrastructure/database"
	queueadapter "github.com/gregory413b/voicementor2/internal/infrastructure/queue/adapter"
	queueport "github.com/gregory413b/voicementor2/internal/infrastructure/queue/port"
	"github.com/gregory413b/voicementor2/internal/infrastructure/realtime"
	"github.com/gregory413b/voicementor2/internal/logger"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	conversationAdapter "github.com/gregory413b/voicementor2/internal/pkg/conversation/persistence/repository/adapter"
	identityAdapter "github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/adapter"
)

func main() {
	// Load .env file
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

	// Connect to the database on startup
	connectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := database.Connect(connectCtx, cfg.Database.URL)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Redis-backed pieces degrade gracefully: no cache means direct reads,
	// no queue means audio objects are orphaned until a manual sweep.
	var cache cacheport.Cache
	if c, err := cacheadapter.NewRedisCache(cfg.Redis.URL); err != nil {
		zl.Warn("cache unavailable, serving without it", zap.Error(err))
	} else {
		cache = c
		defer func() { _ = c.Close() }()
	}

	var queue queueport.Client
	if q, err := queueadapter.NewAsynqClient(cfg.Redis.URL); err != nil {
		zl.Warn("task queue unavailable, audio cleanup disabled", zap.Error(err))
	} else {
		queue = q
		defer func() { _ = q.Close() }()
	}

	store, err := blobadapter.NewFSStore(cfg.Blob.Dir)
	if err != nil {
		zl.Fatal("failed to open blob store", zap.Error(err))
	}

	convs := conversationAdapter.NewPgConversationRepository(pool)
	profiles := identityAdapter.NewPgProfileRepository(pool)
	auth := authz.NewAuthorizer(convs, convs, profiles)

	hub := realtime.NewHub(convs, zl)
	defer hub.Close()

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	v1.RegisterRoutes(r, v1.Deps{
		Pool:         pool,
		Auth:         auth,
		Cache:        cache,
		Store:        store,
		Queue:        queue,
		Hub:          hub,
		JWTSecret:    cfg.Auth.JWTSecret,
		DirectoryTTL: cfg.Cache.ProfileTTL,
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("api listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
