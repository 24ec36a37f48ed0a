package controller

import (
	"errors"
	"net/http"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/library/application/usecase"
	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
)

// statusFor maps use-case errors onto HTTP status codes. Denied and not-found
// both map to 404 so a response never reveals whether a resource exists.
func statusFor(err error) int {
	switch {
	case errors.Is(err, authz.ErrDenied), errors.Is(err, library.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrPersistence):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func bookmarkBody(b *library.Bookmark) map[string]interface{} {
	return map[string]interface{}{
		"id":             b.ID,
		"message_id":     b.MessageID,
		"owner_id":       b.OwnerID,
		"offset_seconds": b.OffsetSeconds,
		"label":          b.Label,
		"created_at":     b.CreatedAt,
	}
}
