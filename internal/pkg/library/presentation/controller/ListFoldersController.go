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

// ListFoldersController lists the requester's folders (one controller per endpoint)
type ListFoldersController struct {
	UC *usecase.ListFoldersUseCase
}

func NewListFoldersController(pool *pgxpool.Pool, auth *authz.Authorizer) *ListFoldersController {
	repo := adapter.NewPgLibraryRepository(pool)
	uc := usecase.NewListFoldersUseCase(repo, auth)
	return &ListFoldersController{UC: uc}
}

func (h *ListFoldersController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		folders, err := h.UC.Execute(ctx, usecase.ListFoldersInput{RequesterID: principal.ID})
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(folders))
		for _, f := range folders {
			out = append(out, gin.H{
				"id":         f.ID,
				"owner_id":   f.OwnerID,
				"name":       f.Name,
				"created_at": f.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{"folders": out, "count": len(out)})
	}
}
