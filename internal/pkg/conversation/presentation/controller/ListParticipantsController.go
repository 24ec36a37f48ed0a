package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/conversation/application/usecase"
	"github.com/gregory413b/voicementor2/internal/pkg/conversation/persistence/repository/adapter"
)

// ListParticipantsController lists the materialized membership of a
// conversation (one controller per endpoint)
type ListParticipantsController struct {
	UC *usecase.ListParticipantsUseCase
}

func NewListParticipantsController(pool *pgxpool.Pool, auth *authz.Authorizer) *ListParticipantsController {
	repo := adapter.NewPgConversationRepository(pool)
	uc := usecase.NewListParticipantsUseCase(repo, auth)
	return &ListParticipantsController{UC: uc}
}

func (h *ListParticipantsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		conversationID := c.Param("conversationId")
		if conversationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "conversationId is required"})
			return
		}

		in := usecase.ListParticipantsInput{RequesterID: principal.ID, ConversationID: conversationID}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		participants, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(participants))
		for _, p := range participants {
			out = append(out, gin.H{
				"conversation_id": p.ConversationID,
				"profile_id":      p.ProfileID,
				"role":            p.Role,
				"created_at":      p.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{"participants": out, "count": len(out)})
	}
}
