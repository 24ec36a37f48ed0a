package repository

import (
	"context"

	conversation "github.com/gregory413b/voicementor2/internal/pkg/conversation/domain"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
)

// ConversationRepository defines persistence for conversations and their
// materialized membership snapshot.
type ConversationRepository interface {
	// Create inserts the conversation row and its membership snapshot in one
	// transaction. Either both land or neither does. Duplicate-key conflicts
	// on the membership table are absorbed so retried creation flows do not
	// error spuriously.
	Create(ctx context.Context, c conversation.Conversation, members []conversation.Participant) (*conversation.Conversation, error)

	GetByID(ctx context.Context, id string) (*conversation.Conversation, error)
	ListForProfile(ctx context.Context, profileID string) ([]conversation.Conversation, error)
	ListParticipants(ctx context.Context, conversationID string) ([]conversation.Participant, error)

	// ResolveDirector returns the existing training-director profile the
	// mentor currently points at, or nil when unassigned or dangling.
	ResolveDirector(ctx context.Context, mentorID string) (*identity.Profile, error)

	// IsMember and ListMemberIDs read the materialized snapshot (authz and
	// realtime fan-out consume these).
	IsMember(ctx context.Context, conversationID, profileID string) (bool, error)
	ListMemberIDs(ctx context.Context, conversationID string) ([]string, error)

	// ConversationRefs resolves the live hierarchy of a conversation: client,
	// mentor, and the mentor's current director reference (nil when unset).
	ConversationRefs(ctx context.Context, conversationID string) (clientID, mentorID string, directorID *string, err error)
}
