package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	queueport "github.com/gregory413b/voicementor2/internal/infrastructure/queue/port"
	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/message/application/task"
	"github.com/gregory413b/voicementor2/internal/pkg/message/application/usecase"
	"github.com/gregory413b/voicementor2/internal/pkg/message/persistence/repository/adapter"
)

// DeleteMessageController removes a message (sender only, one controller per
// endpoint). Audio cleanup is deferred to a background task so the row delete
// never waits on storage.
type DeleteMessageController struct {
	UC *usecase.DeleteMessageUseCase
	Q  queueport.Client
}

func NewDeleteMessageController(pool *pgxpool.Pool, auth *authz.Authorizer, client queueport.Client) *DeleteMessageController {
	repo := adapter.NewPgMessageRepository(pool)
	uc := usecase.NewDeleteMessageUseCase(repo, auth)
	return &DeleteMessageController{UC: uc, Q: client}
}

func (h *DeleteMessageController) Handle() gin.HandlerFunc {
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

		in := usecase.DeleteMessageInput{RequesterID: principal.ID, MessageID: messageID}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msg, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		if h.Q != nil && msg.IsAudio() {
			if t, err := task.NewPurgeBlobTask(*msg.AudioPath); err == nil {
				opts := queueport.EnqueueOption{Queue: "media", MaxRetry: 10}
				// Best-effort: a failed enqueue leaves an orphan object, not
				// a readable message.
				_, _ = h.Q.Enqueue(ctx, t, opts)
			}
		}

		c.JSON(http.StatusOK, gin.H{"id": messageID, "deleted": true})
	}
}
