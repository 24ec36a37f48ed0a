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

// DeleteFolderController removes an owned folder (one controller per endpoint)
type DeleteFolderController struct {
	UC *usecase.DeleteFolderUseCase
}

func NewDeleteFolderController(pool *pgxpool.Pool, auth *authz.Authorizer) *DeleteFolderController {
	repo := adapter.NewPgLibraryRepository(pool)
	uc := usecase.NewDeleteFolderUseCase(repo, auth)
	return &DeleteFolderController{UC: uc}
}

func (h *DeleteFolderController) Handle() gin.HandlerFunc {
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

		in := usecase.DeleteFolderInput{RequesterID: principal.ID, FolderID: folderID}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, in); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": folderID, "deleted": true})
	}
}
