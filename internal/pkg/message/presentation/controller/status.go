package controller

import (
	"errors"
	"net/http"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/message/application/usecase"
	message "github.com/gregory413b/voicementor2/internal/pkg/message/domain"
)

// statusFor maps use-case errors onto HTTP status codes. Denied and not-found
// both map to 404 so a response never reveals whether a message exists.
func statusFor(err error) int {
	switch {
	case errors.Is(err, authz.ErrDenied), errors.Is(err, message.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrPersistence):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func messageBody(m *message.Message) map[string]interface{} {
	return map[string]interface{}{
		"id":               m.ID,
		"conversation_id":  m.ConversationID,
		"sender_id":        m.SenderID,
		"audio_path":       m.AudioPath,
		"body":             m.Body,
		"duration_seconds": m.DurationSeconds,
		"transcript":       m.Transcript,
		"created_at":       m.CreatedAt,
	}
}
