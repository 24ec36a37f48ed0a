package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/conversation/application/usecase"
	"github.com/gregory413b/voicementor2/internal/pkg/conversation/persistence/repository/adapter"
)

// ListConversationsController lists the requester's conversations (one controller per endpoint)
type ListConversationsController struct {
	UC *usecase.ListConversationsUseCase
}

func NewListConversationsController(pool *pgxpool.Pool) *ListConversationsController {
	repo := adapter.NewPgConversationRepository(pool)
	uc := usecase.NewListConversationsUseCase(repo)
	return &ListConversationsController{UC: uc}
}

func (h *ListConversationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		convs, err := h.UC.Execute(ctx, usecase.ListConversationsInput{RequesterID: principal.ID})
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(convs))
		for _, conv := range convs {
			out = append(out, gin.H{
				"id":         conv.ID,
				"client_id":  conv.ClientID,
				"mentor_id":  conv.MentorID,
				"created_at": conv.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{"conversations": out, "count": len(out)})
	}
}
