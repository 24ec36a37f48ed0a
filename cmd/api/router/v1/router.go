package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	blobport "github.com/gregory413b/voicementor2/internal/infrastructure/blobstore/port"
	cacheport "github.com/gregory413b/voicementor2/internal/infrastructure/cache/port"
	queueport "github.com/gregory413b/voicementor2/internal/infrastructure/queue/port"
	"github.com/gregory413b/voicementor2/internal/infrastructure/realtime"
	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	conversationhttp "github.com/gregory413b/voicementor2/internal/pkg/conversation/presentation/http"
	identityAdapter "github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/adapter"
	identityhttp "github.com/gregory413b/voicementor2/internal/pkg/identity/presentation/http"
	libraryhttp "github.com/gregory413b/voicementor2/internal/pkg/library/presentation/http"
	messagehttp "github.com/gregory413b/voicementor2/internal/pkg/message/presentation/http"
)

// Deps carries the shared infrastructure handed down to the HTTP layer.
type Deps struct {
	Pool         *pgxpool.Pool
	Auth         *authz.Authorizer
	Cache        cacheport.Cache
	Store        blobport.Store
	Queue        queueport.Client
	Hub          *realtime.Hub
	JWTSecret    string
	DirectoryTTL time.Duration
}

// RegisterRoutes mounts all version 1 API routes under /api/v1. Every route
// requires a verified token; every route except profile registration also
// requires a registered profile.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	profiles := identityAdapter.NewPgProfileRepository(deps.Pool)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Authenticate(deps.JWTSecret, profiles))

	identityhttp.RegisterRoutes(v1, deps.Pool, deps.Auth, deps.Cache, deps.DirectoryTTL)

	protected := v1.Group("")
	protected.Use(middleware.RequireProfile())
	conversationhttp.RegisterRoutes(protected, deps.Pool, deps.Auth, deps.Hub)
	messagehttp.RegisterRoutes(protected, deps.Pool, deps.Auth, deps.Store, deps.Queue, deps.Hub)
	libraryhttp.RegisterRoutes(protected, deps.Pool, deps.Auth, deps.Hub)
}
