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

// ListBookmarksController lists the requester's bookmarks (one controller per endpoint)
type ListBookmarksController struct {
	UC *usecase.ListBookmarksUseCase
}

func NewListBookmarksController(pool *pgxpool.Pool, auth *authz.Authorizer) *ListBookmarksController {
	repo := adapter.NewPgLibraryRepository(pool)
	uc := usecase.NewListBookmarksUseCase(repo, auth)
	return &ListBookmarksController{UC: uc}
}

func (h *ListBookmarksController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		var messageID *string
		if v := c.Query("message_id"); v != "" {
			messageID = &v
		}

		in := usecase.ListBookmarksInput{RequesterID: principal.ID, MessageID: messageID}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		bookmarks, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(bookmarks))
		for i := range bookmarks {
			out = append(out, bookmarkBody(&bookmarks[i]))
		}
		c.JSON(http.StatusOK, gin.H{"bookmarks": out, "count": len(out)})
	}
}
