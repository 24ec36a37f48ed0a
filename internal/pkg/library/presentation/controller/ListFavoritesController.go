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

// ListFavoritesController lists the requester's favorites (one controller per endpoint)
type ListFavoritesController struct {
	UC *usecase.ListFavoritesUseCase
}

func NewListFavoritesController(pool *pgxpool.Pool, auth *authz.Authorizer) *ListFavoritesController {
	repo := adapter.NewPgLibraryRepository(pool)
	uc := usecase.NewListFavoritesUseCase(repo, auth)
	return &ListFavoritesController{UC: uc}
}

func (h *ListFavoritesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		favorites, err := h.UC.Execute(ctx, usecase.ListFavoritesInput{RequesterID: principal.ID})
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(favorites))
		for _, f := range favorites {
			out = append(out, gin.H{
				"owner_id":   f.OwnerID,
				"message_id": f.MessageID,
				"created_at": f.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{"favorites": out, "count": len(out)})
	}
}
