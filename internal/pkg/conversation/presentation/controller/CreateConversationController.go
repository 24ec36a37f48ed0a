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
	"github.com/gregory413b/voicementor2/internal/pkg/conversation/application/usecase"
	"github.com/gregory413b/voicementor2/internal/pkg/conversation/persistence/repository/adapter"
	identityAdapter "github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/adapter"
)

// CreateConversationController handles the conversation creation endpoint
// One controller per endpoint

type CreateConversationController struct {
	UC  *usecase.CreateConversationUseCase
	Hub *realtime.Hub
}

func NewCreateConversationController(pool *pgxpool.Pool, auth *authz.Authorizer, hub *realtime.Hub) *CreateConversationController {
	convs := adapter.NewPgConversationRepository(pool)
	profiles := identityAdapter.NewPgProfileRepository(pool)
	uc := usecase.NewCreateConversationUseCase(convs, profiles, auth)
	return &CreateConversationController{UC: uc, Hub: hub}
}

type createConversationRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	MentorID string `json:"mentor_id" binding:"required"`
}

func (h *CreateConversationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		var req createConversationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.CreateConversationInput{
			RequesterID: principal.ID,
			ClientID:    req.ClientID,
			MentorID:    req.MentorID,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		conv, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		if h.Hub != nil {
			h.Hub.Publish(ctx, realtime.Event{
				Kind:           realtime.EventConversationCreated,
				ConversationID: conv.ID,
				Data: gin.H{
					"id":         conv.ID,
					"client_id":  conv.ClientID,
					"mentor_id":  conv.MentorID,
					"created_at": conv.CreatedAt,
				},
			})
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":         conv.ID,
			"client_id":  conv.ClientID,
			"mentor_id":  conv.MentorID,
			"created_at": conv.CreatedAt,
		})
	}
}
