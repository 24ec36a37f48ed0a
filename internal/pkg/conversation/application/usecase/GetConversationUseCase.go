package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	conversation "github.com/gregory413b/voicementor2/internal/pkg/conversation/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/conversation/persistence/repository/port"
)

// GetConversationInput fetches a conversation the requester belongs to.
type GetConversationInput struct {
	RequesterID    string
	ConversationID string
}

// GetConversationUseCase authorizes before loading, so a non-member gets the
// same denial whether or not the conversation exists.
type GetConversationUseCase struct {
	Repo repository.ConversationRepository
	Auth *authz.Authorizer
}

func NewGetConversationUseCase(repo repository.ConversationRepository, auth *authz.Authorizer) *GetConversationUseCase {
	return &GetConversationUseCase{Repo: repo, Auth: auth}
}

func (uc *GetConversationUseCase) Execute(ctx context.Context, in GetConversationInput) (*conversation.Conversation, error) {
	if in.ConversationID == "" {
		return nil, fmt.Errorf("conversation_id is required")
	}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.ConversationRef{ID: in.ConversationID}, authz.ActionRead); err != nil {
		return nil, err
	}
	c, err := uc.Repo.GetByID(ctx, in.ConversationID)
	if errors.Is(err, conversation.ErrNotFound) {
		// Deleted between the membership check and the load; keep the
		// response indistinguishable from a denial.
		return nil, authz.ErrDenied
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return c, nil
}
