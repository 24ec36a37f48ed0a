package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	message "github.com/gregory413b/voicementor2/internal/pkg/message/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/message/persistence/repository/port"
)

// DeleteMessageInput removes a message. Only the sender may delete it; a
// non-sender gets the same not-found outcome as a nonexistent message.
type DeleteMessageInput struct {
	RequesterID string
	MessageID   string
}

type DeleteMessageUseCase struct {
	Repo repository.MessageRepository
	Auth *authz.Authorizer
}

func NewDeleteMessageUseCase(repo repository.MessageRepository, auth *authz.Authorizer) *DeleteMessageUseCase {
	return &DeleteMessageUseCase{Repo: repo, Auth: auth}
}

// Execute returns the deleted message so the caller can schedule blob cleanup.
func (uc *DeleteMessageUseCase) Execute(ctx context.Context, in DeleteMessageInput) (*message.Message, error) {
	if in.MessageID == "" {
		return nil, fmt.Errorf("message id is required")
	}

	msg, err := uc.Repo.GetByID(ctx, in.MessageID)
	if errors.Is(err, message.ErrNotFound) {
		return nil, authz.ErrDenied
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	ref := authz.MessageRef{ConversationID: msg.ConversationID, SenderID: msg.SenderID}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, ref, authz.ActionDelete); err != nil {
		return nil, err
	}

	if err := uc.Repo.Delete(ctx, in.MessageID); err != nil {
		if errors.Is(err, message.ErrNotFound) {
			// Lost a race with another delete; the row is gone either way.
			return msg, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msg, nil
}
