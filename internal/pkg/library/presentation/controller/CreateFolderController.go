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

// CreateFolderController creates a personal folder (one controller per endpoint)
type CreateFolderController struct {
	UC *usecase.CreateFolderUseCase
}

func NewCreateFolderController(pool *pgxpool.Pool, auth *authz.Authorizer) *CreateFolderController {
	repo := adapter.NewPgLibraryRepository(pool)
	uc := usecase.NewCreateFolderUseCase(repo, auth)
	return &CreateFolderController{UC: uc}
}

type createFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CreateFolderController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		var req createFolderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.CreateFolderInput{RequesterID: principal.ID, Name: req.Name}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		f, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"id":         f.ID,
			"owner_id":   f.OwnerID,
			"name":       f.Name,
			"created_at": f.CreatedAt,
		})
	}
}
