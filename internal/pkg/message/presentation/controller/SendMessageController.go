package controller

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	blobport "github.com/gregory413b/voicementor2/internal/infrastructure/blobstore/port"
	"github.com/gregory413b/voicementor2/internal/infrastructure/realtime"
	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/message/application/usecase"
	"github.com/gregory413b/voicementor2/internal/pkg/message/persistence/repository/adapter"
)

// SendMessageController handles the send-message endpoint (one controller per
// endpoint). Voice messages arrive as multipart uploads; text messages as
// JSON. The audio object is written before the row so a stored message never
// points at a missing blob; on a rejected insert the orphan object is removed
// best-effort.
type SendMessageController struct {
	UC    *usecase.SendMessageUseCase
	Auth  *authz.Authorizer
	Store blobport.Store
	Hub   *realtime.Hub
}

func NewSendMessageController(pool *pgxpool.Pool, auth *authz.Authorizer, store blobport.Store, hub *realtime.Hub) *SendMessageController {
	repo := adapter.NewPgMessageRepository(pool)
	uc := usecase.NewSendMessageUseCase(repo, auth)
	return &SendMessageController{UC: uc, Auth: auth, Store: store, Hub: hub}
}

type sendTextRequest struct {
	Body string `json:"body" binding:"required"`
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
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

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			h.handleAudio(c, ctx, principal.ID, conversationID)
			return
		}

		var req sendTextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		msg, err := h.UC.Execute(ctx, usecase.SendMessageInput{
			RequesterID:    principal.ID,
			ConversationID: conversationID,
			Body:           &req.Body,
		})
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		h.publish(ctx, msg.ConversationID, messageBody(msg))
		c.JSON(http.StatusCreated, messageBody(msg))
	}
}

func (h *SendMessageController) handleAudio(c *gin.Context, ctx context.Context, requesterID, conversationID string) {
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}
	defer file.Close()

	duration, err := strconv.Atoi(c.PostForm("duration_seconds"))
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration_seconds must be a positive integer"})
		return
	}

	var transcript *string
	if t := strings.TrimSpace(c.PostForm("transcript")); t != "" {
		transcript = &t
	}

	key := conversationID + "/" + uuid.NewString() + "." + audioExt(header.Filename)

	// Check write access before touching storage so a non-member cannot
	// place objects under a foreign conversation prefix.
	ref := authz.BlobRef{ConversationID: conversationID, DeclaredOwnerID: requesterID}
	if err := h.Auth.Authorize(ctx, requesterID, ref, authz.ActionInsert); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Store.Put(ctx, key, file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store audio"})
		return
	}

	msg, err := h.UC.Execute(ctx, usecase.SendMessageInput{
		RequesterID:     requesterID,
		ConversationID:  conversationID,
		AudioPath:       &key,
		DurationSeconds: int32(duration),
		Transcript:      transcript,
	})
	if err != nil {
		_ = h.Store.Delete(ctx, key)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	h.publish(ctx, msg.ConversationID, messageBody(msg))
	c.JSON(http.StatusCreated, messageBody(msg))
}

func (h *SendMessageController) publish(ctx context.Context, conversationID string, data interface{}) {
	if h.Hub == nil {
		return
	}
	h.Hub.Publish(ctx, realtime.Event{
		Kind:           realtime.EventMessageCreated,
		ConversationID: conversationID,
		Data:           data,
	})
}

// audioExt normalizes the upload's extension into a storage-safe suffix.
func audioExt(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return "m4a"
		}
	}
	if ext == "" {
		return "m4a"
	}
	return ext
}
