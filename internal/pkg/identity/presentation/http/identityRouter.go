package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/gregory413b/voicementor2/internal/infrastructure/cache/port"
	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/identity/presentation/controller"
)

// RegisterRoutes registers profile endpoints under the given router group.
// It constructs per-endpoint controllers and binds them directly to routes.
// Registration only needs a verified token; everything else also needs a
// registered profile.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, auth *authz.Authorizer, cache cacheport.Cache, directoryTTL time.Duration) {
	registerCtl := controller.NewRegisterProfileController(pool, auth)
	getCtl := controller.NewGetProfileController(pool, auth)
	listCtl := controller.NewListProfilesController(pool, auth, cache, directoryTTL)
	renameCtl := controller.NewUpdateDisplayNameController(pool, auth, cache)
	mentorCtl := controller.NewAssignMentorController(pool, cache)
	directorCtl := controller.NewAssignDirectorController(pool, cache)

	// POST /api/v1/profiles -> create the requester's profile (once)
	g.POST("/profiles", registerCtl.Handle())

	requireProfile := middleware.RequireProfile()

	// GET /api/v1/profiles -> profile directory
	g.GET("/profiles", requireProfile, listCtl.Handle())

	// GET /api/v1/profiles/:profileId -> fetch one profile
	g.GET("/profiles/:profileId", requireProfile, getCtl.Handle())

	// PATCH /api/v1/profiles/:profileId/display-name -> rename own profile
	g.PATCH("/profiles/:profileId/display-name", requireProfile, renameCtl.Handle())

	// PUT /api/v1/profiles/:profileId/mentor -> admin: assign/clear mentor
	g.PUT("/profiles/:profileId/mentor", requireProfile, mentorCtl.Handle())

	// PUT /api/v1/profiles/:profileId/director -> admin: assign/clear director
	g.PUT("/profiles/:profileId/director", requireProfile, directorCtl.Handle())
}
