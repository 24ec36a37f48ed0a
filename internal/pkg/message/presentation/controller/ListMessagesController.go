package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/message/application/usecase"
	"github.com/gregory413b/voicementor2/internal/pkg/message/persistence/repository/adapter"
)

// ListMessagesController handles fetching messages by conversation ID (one controller per endpoint)
type ListMessagesController struct {
	UC *usecase.ListMessagesUseCase
}

func NewListMessagesController(pool *pgxpool.Pool, auth *authz.Authorizer) *ListMessagesController {
	repo := adapter.NewPgMessageRepository(pool)
	uc := usecase.NewListMessagesUseCase(repo, auth)
	return &ListMessagesController{UC: uc}
}

func (h *ListMessagesController) Handle() gin.HandlerFunc {
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

		// Defaults
		limit := 50
		offset := 0

		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		if v := c.Query("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				offset = n
			}
		}

		in := usecase.ListMessagesInput{
			RequesterID:    principal.ID,
			ConversationID: conversationID,
			Limit:          limit,
			Offset:         offset,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msgs, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(msgs))
		for i := range msgs {
			out = append(out, messageBody(&msgs[i]))
		}
		c.JSON(http.StatusOK, gin.H{
			"messages": out,
			"limit":    limit,
			"offset":   offset,
			"count":    len(out),
		})
	}
}
