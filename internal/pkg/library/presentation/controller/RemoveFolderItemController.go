package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/library/application/usecase"
	"github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/adapter"
)

// RemoveFolderItemController removes a message from a folder (one controller per endpoint)
type RemoveFolderItemController struct {
	UC *usecase.RemoveFolderItemUseCase
}

func NewRemoveFolderItemController(pool *pgxpool.Pool, auth *authz.Authorizer) *RemoveFolderItemController {
	repo := adapter.NewPgLibraryRepository(pool)
	uc := usecase.NewRemoveFolderItemUseCase(repo, auth)
	return &RemoveFolderItemController{UC: uc}
}

func (h *RemoveFolderItemController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		folderID := c.Param("folderId")
		messageID := c.Param("messageId")
		if folderID == "" || messageID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "folderId and messageId are required"})
			return
		}

		in := usecase.RemoveFolderItemInput{
			RequesterID: principal.ID,
			FolderID:    folderID,
			MessageID:   messageID,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, in); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"folder_id": folderID, "message_id": messageID, "removed": true})
	}
}
