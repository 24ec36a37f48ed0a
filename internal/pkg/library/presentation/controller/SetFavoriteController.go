package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gregory413b/voicementor2/internal/infrastructure/realtime"
	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/library/application/usecase"
	"github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/adapter"
)

// SetFavoriteController marks a message as a favorite (one controller per endpoint)
type SetFavoriteController struct {
	UC  *usecase.SetFavoriteUseCase
	Hub *realtime.Hub
}

func NewSetFavoriteController(pool *pgxpool.Pool, auth *authz.Authorizer, hub *realtime.Hub) *SetFavoriteController {
	repo := adapter.NewPgLibraryRepository(pool)
	uc := usecase.NewSetFavoriteUseCase(repo, auth)
	return &SetFavoriteController{UC: uc, Hub: hub}
}

func (h *SetFavoriteController) Handle() gin.HandlerFunc {
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

		in := usecase.SetFavoriteInput{RequesterID: principal.ID, MessageID: messageID}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		f, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		if h.Hub != nil {
			h.Hub.Publish(ctx, realtime.Event{
				Kind:    realtime.EventFavoriteCreated,
				OwnerID: f.OwnerID,
				Data:    gin.H{"owner_id": f.OwnerID, "message_id": f.MessageID},
			})
		}

		c.JSON(http.StatusOK, gin.H{"owner_id": f.OwnerID, "message_id": f.MessageID})
	}
}
