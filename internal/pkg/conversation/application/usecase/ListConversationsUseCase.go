package usecase

import (
	"context"
	"fmt"

	conversation "github.com/gregory413b/voicementor2/internal/pkg/conversation/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/conversation/persistence/repository/port"
)

// ListConversationsInput lists the conversations the requester is a
// materialized member of. Scoping by requester makes this inherently safe.
type ListConversationsInput struct {
	RequesterID string
}

type ListConversationsUseCase struct {
	Repo repository.ConversationRepository
}

func NewListConversationsUseCase(repo repository.ConversationRepository) *ListConversationsUseCase {
	return &ListConversationsUseCase{Repo: repo}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context, in ListConversationsInput) ([]conversation.Conversation, error) {
	if in.RequesterID == "" {
		return nil, fmt.Errorf("requester id is required")
	}
	convs, err := uc.Repo.ListForProfile(ctx, in.RequesterID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return convs, nil
}
