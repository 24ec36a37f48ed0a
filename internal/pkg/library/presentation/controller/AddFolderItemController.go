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

// AddFolderItemController files a message into a folder (one controller per endpoint)
type AddFolderItemController struct {
	UC *usecase.AddFolderItemUseCase
}

func NewAddFolderItemController(pool *pgxpool.Pool, auth *authz.Authorizer) *AddFolderItemController {
	repo := adapter.NewPgLibraryRepository(pool)
	uc := usecase.NewAddFolderItemUseCase(repo, auth)
	return &AddFolderItemController{UC: uc}
}

type addFolderItemRequest struct {
	MessageID string `json:"message_id" binding:"required"`
}

func (h *AddFolderItemController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		folderID := c.Param("folderId")
		if folderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "folderId is required"})
			return
		}

		var req addFolderItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.AddFolderItemInput{
			RequesterID: principal.ID,
			FolderID:    folderID,
			MessageID:   req.MessageID,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		item, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"folder_id":  item.FolderID,
			"message_id": item.MessageID,
		})
	}
}
