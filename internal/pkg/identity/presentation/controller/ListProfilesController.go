package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/gregory413b/voicementor2/internal/infrastructure/cache/port"
	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/identity/application/usecase"
	"github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/adapter"
)

// ListProfilesController serves the profile directory (one controller per endpoint)
type ListProfilesController struct {
	UC *usecase.ListProfilesUseCase
}

func NewListProfilesController(pool *pgxpool.Pool, auth *authz.Authorizer, cache cacheport.Cache, ttl time.Duration) *ListProfilesController {
	repo := adapter.NewPgProfileRepository(pool)
	uc := usecase.NewListProfilesUseCase(repo, auth, cache, ttl)
	return &ListProfilesController{UC: uc}
}

func (h *ListProfilesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		profiles, err := h.UC.Execute(ctx, usecase.ListProfilesInput{RequesterID: principal.ID})
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(profiles))
		for i := range profiles {
			out = append(out, profileBody(&profiles[i]))
		}
		c.JSON(http.StatusOK, gin.H{"profiles": out, "count": len(out)})
	}
}
