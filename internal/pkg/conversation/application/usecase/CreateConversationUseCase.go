package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	conversation "github.com/gregory413b/voicementor2/internal/pkg/conversation/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/conversation/persistence/repository/port"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
	identityrepo "github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/port"
)

// CreateConversationInput opens a channel between a client and a mentor.
type CreateConversationInput struct {
	RequesterID string
	ClientID    string
	MentorID    string
}

// CreateConversationUseCase validates the client/mentor pair, authorizes the
// requester, and persists the conversation together with its materialized
// membership snapshot in one transaction.
type CreateConversationUseCase struct {
	Convs    repository.ConversationRepository
	Profiles identityrepo.ProfileRepository
	Auth     *authz.Authorizer
}

func NewCreateConversationUseCase(convs repository.ConversationRepository, profiles identityrepo.ProfileRepository, auth *authz.Authorizer) *CreateConversationUseCase {
	return &CreateConversationUseCase{Convs: convs, Profiles: profiles, Auth: auth}
}

func (uc *CreateConversationUseCase) Execute(ctx context.Context, in CreateConversationInput) (*conversation.Conversation, error) {
	if in.ClientID == "" || in.MentorID == "" {
		return nil, fmt.Errorf("client_id and mentor_id are required")
	}

	if err := uc.requireRole(ctx, in.ClientID, identity.RoleClient); err != nil {
		return nil, err
	}
	if err := uc.requireRole(ctx, in.MentorID, identity.RoleMentor); err != nil {
		return nil, err
	}

	ref := authz.ConversationCreateRef{ClientID: in.ClientID, MentorID: in.MentorID}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, ref, authz.ActionInsert); err != nil {
		return nil, err
	}

	// Snapshot the hierarchy as it stands right now. A dangling director
	// reference resolves to nil and simply yields no director row.
	director, err := uc.Convs.ResolveDirector(ctx, in.MentorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	conv := conversation.Conversation{ClientID: in.ClientID, MentorID: in.MentorID}
	members := conversation.MaterializeMembers(conv, director)

	created, err := uc.Convs.Create(ctx, conv, members)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return created, nil
}

func (uc *CreateConversationUseCase) requireRole(ctx context.Context, id string, want identity.Role) error {
	p, err := uc.Profiles.GetByID(ctx, id)
	if errors.Is(err, identity.ErrNotFound) {
		return conversation.ErrRoleMismatch
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if p.Role != want {
		return conversation.ErrRoleMismatch
	}
	return nil
}
