package controller

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	blobport "github.com/gregory413b/voicementor2/internal/infrastructure/blobstore/port"
	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	message "github.com/gregory413b/voicementor2/internal/pkg/message/domain"
	"github.com/gregory413b/voicementor2/internal/pkg/message/persistence/repository/adapter"
	repository "github.com/gregory413b/voicementor2/internal/pkg/message/persistence/repository/port"
)

// GetAudioController streams a message's audio object to a conversation
// member (one controller per endpoint).
type GetAudioController struct {
	Repo  repository.MessageRepository
	Auth  *authz.Authorizer
	Store blobport.Store
}

func NewGetAudioController(pool *pgxpool.Pool, auth *authz.Authorizer, store blobport.Store) *GetAudioController {
	return &GetAudioController{Repo: adapter.NewPgMessageRepository(pool), Auth: auth, Store: store}
}

var audioContentTypes = map[string]string{
	".m4a": "audio/mp4",
	".mp3": "audio/mpeg",
	".ogg": "audio/ogg",
	".wav": "audio/wav",
}

func (h *GetAudioController) Handle() gin.HandlerFunc {
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

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		msg, err := h.Repo.GetByID(ctx, messageID)
		if errors.Is(err, message.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": authz.ErrDenied.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load message"})
			return
		}

		ref := authz.MessageRef{ConversationID: msg.ConversationID, SenderID: msg.SenderID}
		if err := h.Auth.Authorize(ctx, principal.ID, ref, authz.ActionRead); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		if !msg.IsAudio() {
			c.JSON(http.StatusNotFound, gin.H{"error": "message has no audio"})
			return
		}

		rc, err := h.Store.Open(ctx, *msg.AudioPath)
		if errors.Is(err, blobport.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "audio object missing"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open audio"})
			return
		}
		defer rc.Close()

		contentType := audioContentTypes[filepath.Ext(*msg.AudioPath)]
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Header("Content-Type", contentType)
		c.Status(http.StatusOK)
		_, _ = io.Copy(c.Writer, rc)
	}
}
