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

// UpdateDisplayNameController renames a profile (one controller per endpoint)
type UpdateDisplayNameController struct {
	UC *usecase.UpdateDisplayNameUseCase
}

func NewUpdateDisplayNameController(pool *pgxpool.Pool, auth *authz.Authorizer, cache cacheport.Cache) *UpdateDisplayNameController {
	repo := adapter.NewPgProfileRepository(pool)
	uc := usecase.NewUpdateDisplayNameUseCase(repo, auth, cache)
	return &UpdateDisplayNameController{UC: uc}
}

type updateDisplayNameRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

func (h *UpdateDisplayNameController) Handle() gin.HandlerFunc {
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

		var req updateDisplayNameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.UpdateDisplayNameInput{
			RequesterID: principal.ID,
			ProfileID:   profileID,
			DisplayName: req.DisplayName,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, in); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": profileID, "display_name": req.DisplayName})
	}
}
