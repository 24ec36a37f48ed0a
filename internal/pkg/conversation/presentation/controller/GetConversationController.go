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

// GetConversationController handles fetching a single conversation (one controller per endpoint)
type GetConversationController struct {
	UC *usecase.GetConversationUseCase
}

func NewGetConversationController(pool *pgxpool.Pool, auth *authz.Authorizer) *GetConversationController {
	repo := adapter.NewPgConversationRepository(pool)
	uc := usecase.NewGetConversationUseCase(repo, auth)
	return &GetConversationController{UC: uc}
}

func (h *GetConversationController) Handle() gin.HandlerFunc {
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

		in := usecase.GetConversationInput{RequesterID: principal.ID, ConversationID: conversationID}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		conv, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":         conv.ID,
			"client_id":  conv.ClientID,
			"mentor_id":  conv.MentorID,
			"created_at": conv.CreatedAt,
		})
	}
}
