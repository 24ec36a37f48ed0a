package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gregory413b/voicementor2/internal/middleware"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/identity/application/usecase"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
	"github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/adapter"
)

// RegisterProfileController handles first-time profile creation
// One controller per endpoint

type RegisterProfileController struct {
	UC *usecase.RegisterProfileUseCase
}

func NewRegisterProfileController(pool *pgxpool.Pool, auth *authz.Authorizer) *RegisterProfileController {
	repo := adapter.NewPgProfileRepository(pool)
	uc := usecase.NewRegisterProfileUseCase(repo, auth)
	return &RegisterProfileController{UC: uc}
}

type registerProfileRequest struct {
	DisplayName string  `json:"display_name" binding:"required"`
	Role        string  `json:"role" binding:"required"`
	MentorID    *string `json:"mentor_id"`
	DirectorID  *string `json:"director_id"`
}

func (h *RegisterProfileController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err == nil {
			// The identity already has a profile; registration is once only.
			c.JSON(http.StatusConflict, gin.H{"error": "profile already exists", "id": principal.ID})
			return
		}

		// Registration is the one endpoint where the subject has no profile
		// yet, so the requester id comes straight from the verified token.
		requesterID := middleware.Subject(c)
		if requesterID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing subject"})
			return
		}

		var req registerProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.RegisterProfileInput{
			RequesterID: requesterID,
			DisplayName: req.DisplayName,
			Role:        identity.Role(req.Role),
			MentorID:    req.MentorID,
			DirectorID:  req.DirectorID,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		p, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, profileBody(p))
	}
}
