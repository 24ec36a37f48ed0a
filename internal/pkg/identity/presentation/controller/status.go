package controller

import (
	"errors"
	"net/http"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/identity/application/usecase"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
)

// statusFor maps use-case errors onto HTTP status codes. Denied and not-found
// both map to 404 so a response never reveals whether a resource exists.
func statusFor(err error) int {
	switch {
	case errors.Is(err, authz.ErrDenied), errors.Is(err, identity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, identity.ErrAdminRequired):
		return http.StatusForbidden
	case errors.Is(err, identity.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrPersistence):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func profileBody(p *identity.Profile) map[string]interface{} {
	return map[string]interface{}{
		"id":           p.ID,
		"display_name": p.DisplayName,
		"role":         p.Role,
		"mentor_id":    p.MentorID,
		"director_id":  p.DirectorID,
		"created_at":   p.CreatedAt,
	}
}
