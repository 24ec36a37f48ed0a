package usecase

import (
	"context"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	conversation "github.com/gregory413b/voicementor2/internal/pkg/conversation/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/conversation/persistence/repository/port"
)

// ListParticipantsInput lists the materialized membership of a conversation.
// Only members may see it (self-referential check against the same table).
type ListParticipantsInput struct {
	RequesterID    string
	ConversationID string
}

type ListParticipantsUseCase struct {
	Repo repository.ConversationRepository
	Auth *authz.Authorizer
}

func NewListParticipantsUseCase(repo repository.ConversationRepository, auth *authz.Authorizer) *ListParticipantsUseCase {
	return &ListParticipantsUseCase{Repo: repo, Auth: auth}
}

func (uc *ListParticipantsUseCase) Execute(ctx context.Context, in ListParticipantsInput) ([]conversation.Participant, error) {
	if in.ConversationID == "" {
		return nil, fmt.Errorf("conversation_id is required")
	}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.ParticipantRef{ConversationID: in.ConversationID}, authz.ActionRead); err != nil {
		return nil, err
	}
	participants, err := uc.Repo.ListParticipants(ctx, in.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return participants, nil
}
