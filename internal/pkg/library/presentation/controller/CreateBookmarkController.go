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

// CreateBookmarkController handles bookmark creation (one controller per endpoint)
type CreateBookmarkController struct {
	UC  *usecase.CreateBookmarkUseCase
	Hub *realtime.Hub
}

func NewCreateBookmarkController(pool *pgxpool.Pool, auth *authz.Authorizer, hub *realtime.Hub) *CreateBookmarkController {
	repo := adapter.NewPgLibraryRepository(pool)
	uc := usecase.NewCreateBookmarkUseCase(repo, auth)
	return &CreateBookmarkController{UC: uc, Hub: hub}
}

type createBookmarkRequest struct {
	MessageID     string `json:"message_id" binding:"required"`
	OffsetSeconds int32  `json:"offset_seconds"`
	Label         string `json:"label"`
}

func (h *CreateBookmarkController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		var req createBookmarkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.CreateBookmarkInput{
			RequesterID:   principal.ID,
			MessageID:     req.MessageID,
			OffsetSeconds: req.OffsetSeconds,
			Label:         req.Label,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		b, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		if h.Hub != nil {
			// Owner-scoped: bookmarks are private, only the owner's other
			// devices should hear about this.
			h.Hub.Publish(ctx, realtime.Event{
				Kind:    realtime.EventBookmarkCreated,
				OwnerID: b.OwnerID,
				Data:    bookmarkBody(b),
			})
		}

		c.JSON(http.StatusCreated, bookmarkBody(b))
	}
}
