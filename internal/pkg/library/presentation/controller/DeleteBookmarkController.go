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

// DeleteBookmarkController removes an owned bookmark (one controller per endpoint)
type DeleteBookmarkController struct {
	UC *usecase.DeleteBookmarkUseCase
}

func NewDeleteBookmarkController(pool *pgxpool.Pool, auth *authz.Authorizer) *DeleteBookmarkController {
	repo := adapter.NewPgLibraryRepository(pool)
	uc := usecase.NewDeleteBookmarkUseCase(repo, auth)
	return &DeleteBookmarkController{UC: uc}
}

func (h *DeleteBookmarkController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		bookmarkID := c.Param("bookmarkId")
		if bookmarkID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bookmarkId is required"})
			return
		}

		in := usecase.DeleteBookmarkInput{RequesterID: principal.ID, BookmarkID: bookmarkID}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, in); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": bookmarkID, "deleted": true})
	}
}
