package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/library/application/usecase"
	"github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/adapter"
)

// UnsetFavoriteController removes a favorite marker (one controller per endpoint)
type UnsetFavoriteController struct {
	UC *usecase.UnsetFavoriteUseCase
}

func NewUnsetFavoriteController(pool *pgxpool.Pool, auth *authz.Authorizer) *UnsetFavoriteController {
	repo := adapter.NewPgLibraryRepository(pool)
	uc := usecase.NewUnsetFavoriteUseCase(repo, auth)
	return &UnsetFavoriteController{UC: uc}
}

func (h *UnsetFavoriteController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		messageID := c.Param("messageId")
		if messageID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "messageId is required"})
			return
		}

		in := usecase.UnsetFavoriteInput{RequesterID: principal.ID, MessageID: messageID}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, in); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message_id": messageID, "favorited": false})
	}
}
