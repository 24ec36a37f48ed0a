package controller

import (
	"errors"
	"net/http"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/conversation/application/usecase"
	conversation "github.com/gregory413b/voicementor2/internal/pkg/conversation/domain"
)

// statusFor maps use-case errors onto HTTP status codes. Denied and not-found
// both map to 404 so a response never reveals whether a conversation exists.
func statusFor(err error) int {
	switch {
	case errors.Is(err, authz.ErrDenied), errors.Is(err, conversation.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrPersistence):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
