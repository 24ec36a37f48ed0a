package repository

import (
	"context"

	message "github.com/gregory413b/voicementor2/internal/pkg/message/domain"
)

// MessageRepository defines persistence operations for audio messages.
type MessageRepository interface {
	Save(ctx context.Context, m message.Message) (*message.Message, error)
	GetByID(ctx context.Context, id string) (*message.Message, error)
	ListByConversation(ctx context.Context, conversationID string, limit, offset int) ([]message.Message, error)
	Delete(ctx context.Context, id string) error
}
