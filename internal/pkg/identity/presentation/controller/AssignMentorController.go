package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/gregory413b/voicementor2/internal/infrastructure/cache/port"
	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/identity/application/usecase"
	"github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/adapter"
)

// AssignMentorController points a client at a mentor (admin only, one controller per endpoint)
type AssignMentorController struct {
	UC *usecase.AssignMentorUseCase
}

func NewAssignMentorController(pool *pgxpool.Pool, cache cacheport.Cache) *AssignMentorController {
	repo := adapter.NewPgProfileRepository(pool)
	uc := usecase.NewAssignMentorUseCase(repo, cache)
	return &AssignMentorController{UC: uc}
}

type assignMentorRequest struct {
	MentorID *string `json:"mentor_id"`
}

func (h *AssignMentorController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		clientID := c.Param("profileId")
		if clientID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "profileId is required"})
			return
		}

		var req assignMentorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.AssignMentorInput{
			RequesterID: principal.ID,
			ClientID:    clientID,
			MentorID:    req.MentorID,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, in); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": clientID, "mentor_id": req.MentorID})
	}
}
