package usecase

import (
	"context"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	message "github.com/gregory413b/voicementor2/internal/pkg/message/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/message/persistence/repository/port"
)

// ListMessagesInput fetches messages for a conversation the requester belongs to.
type ListMessagesInput struct {
	RequesterID    string
	ConversationID string
	Limit          int
	Offset         int
}

type ListMessagesUseCase struct {
	Repo repository.MessageRepository
	Auth *authz.Authorizer
}

func NewListMessagesUseCase(repo repository.MessageRepository, auth *authz.Authorizer) *ListMessagesUseCase {
	return &ListMessagesUseCase{Repo: repo, Auth: auth}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, in ListMessagesInput) ([]message.Message, error) {
	if in.ConversationID == "" {
		return nil, fmt.Errorf("conversation_id is required")
	}
	ref := authz.MessageRef{ConversationID: in.ConversationID}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, ref, authz.ActionRead); err != nil {
		return nil, err
	}
	msgs, err := uc.Repo.ListByConversation(ctx, in.ConversationID, in.Limit, in.Offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msgs, nil
}
