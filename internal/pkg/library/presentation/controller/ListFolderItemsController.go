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

// ListFolderItemsController lists a folder's contents (one controller per endpoint)
type ListFolderItemsController struct {
	UC *usecase.ListFolderItemsUseCase
}

func NewListFolderItemsController(pool *pgxpool.Pool, auth *authz.Authorizer) *ListFolderItemsController {
	repo := adapter.NewPgLibraryRepository(pool)
	uc := usecase.NewListFolderItemsUseCase(repo, auth)
	return &ListFolderItemsController{UC: uc}
}

func (h *ListFolderItemsController) Handle() gin.HandlerFunc {
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

		in := usecase.ListFolderItemsInput{RequesterID: principal.ID, FolderID: folderID}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		items, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(items))
		for _, item := range items {
			out = append(out, gin.H{
				"folder_id":  item.FolderID,
				"message_id": item.MessageID,
				"created_at": item.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{"items": out, "count": len(out)})
	}
}
