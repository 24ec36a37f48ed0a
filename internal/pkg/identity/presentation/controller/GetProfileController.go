package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/identity/application/usecase"
	"github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/adapter"
)

// GetProfileController handles fetching a single profile (one controller per endpoint)
type GetProfileController struct {
	UC *usecase.GetProfileUseCase
}

func NewGetProfileController(pool *pgxpool.Pool, auth *authz.Authorizer) *GetProfileController {
	repo := adapter.NewPgProfileRepository(pool)
	uc := usecase.NewGetProfileUseCase(repo, auth)
	return &GetProfileController{UC: uc}
}

func (h *GetProfileController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		profileID := c.Param("profileId")
		if profileID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "profileId is required"})
			return
		}

		in := usecase.GetProfileInput{RequesterID: principal.ID, ProfileID: profileID}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		p, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, profileBody(p))
	}
}
