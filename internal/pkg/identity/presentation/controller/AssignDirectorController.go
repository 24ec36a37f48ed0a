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

// AssignDirectorController points a mentor at a training director (admin only,
// one controller per endpoint). Director membership of the mentor's
// conversations is re-materialized transactionally by the repository.
type AssignDirectorController struct {
	UC *usecase.AssignDirectorUseCase
}

func NewAssignDirectorController(pool *pgxpool.Pool, cache cacheport.Cache) *AssignDirectorController {
	repo := adapter.NewPgProfileRepository(pool)
	uc := usecase.NewAssignDirectorUseCase(repo, cache)
	return &AssignDirectorController{UC: uc}
}

type assignDirectorRequest struct {
	DirectorID *string `json:"director_id"`
}

func (h *AssignDirectorController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		mentorID := c.Param("profileId")
		if mentorID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "profileId is required"})
			return
		}

		var req assignDirectorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.AssignDirectorInput{
			RequesterID: principal.ID,
			MentorID:    mentorID,
			DirectorID:  req.DirectorID,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, in); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": mentorID, "director_id": req.DirectorID})
	}
}
