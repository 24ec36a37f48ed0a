// Package authz is the single policy-evaluation layer for the application.
// Every data-access call is gated by Authorizer.Authorize with an explicit
// requester id, a typed resource reference carrying the row fields the policy
// needs, and an action. Policies fail closed: any lookup error or missing
// membership/ownership row denies the operation.
package authz

import (
	"context"
	"errors"
)

// ErrDenied is returned for every policy failure. Callers must surface it
// identically to not-found so an unauthorized requester cannot probe for row
// existence.
var ErrDenied = errors.New("authz: not permitted")

// Action is the operation being attempted on a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource is a typed reference to the row (or prospective row) under check.
type Resource interface{ resource() }

// ProfileRef refers to a profile row.
type ProfileRef struct {
	ID string
}

// ConversationRef refers to an existing conversation.
type ConversationRef struct {
	ID string
}

// ConversationCreateRef is the prospective client/mentor pair of a new
// conversation.
type ConversationCreateRef struct {
	ClientID string
	MentorID string
}

// ParticipantRef refers to the membership rows of a conversation.
type ParticipantRef struct {
	ConversationID string
}

// MessageRef carries the row fields message policies consult.
type MessageRef struct {
	ConversationID string
	SenderID       string
}

// BookmarkRef, FavoriteRef and FolderRef are owner-private rows.
type BookmarkRef struct {
	OwnerID string
}

type FavoriteRef struct {
	OwnerID string
}

type FolderRef struct {
	OwnerID string
}

// FolderItemRef links a folder to a message. Inserting requires both folder
// ownership and current membership in the message's conversation.
type FolderItemRef struct {
	FolderOwnerID  string
	ConversationID string
}

// BlobRef refers to an audio object by its conversation path prefix.
// DeclaredOwnerID is the identity the uploader claims for the object.
type BlobRef struct {
	ConversationID  string
	DeclaredOwnerID string
}

func (ProfileRef) resource()            {}
func (ConversationRef) resource()       {}
func (ConversationCreateRef) resource() {}
func (ParticipantRef) resource()        {}
func (MessageRef) resource()            {}
func (BookmarkRef) resource()           {}
func (FavoriteRef) resource()           {}
func (FolderRef) resource()             {}
func (FolderItemRef) resource()         {}
func (BlobRef) resource()               {}

// MembershipStore reads the materialized conversation_participants table.
type MembershipStore interface {
	IsMember(ctx context.Context, conversationID, profileID string) (bool, error)
	ListMemberIDs(ctx context.Context, conversationID string) ([]string, error)
}

// HierarchyStore resolves the live hierarchy of a conversation: its client,
// its mentor, and the mentor's current director (nil when unassigned or the
// reference dangles). It is the ground-truth fallback for message writes.
type HierarchyStore interface {
	ConversationRefs(ctx context.Context, conversationID string) (clientID, mentorID string, directorID *string, err error)
}

// ProfileStore resolves the hierarchy pointers of a single profile, used by
// the conversation-creation policy.
type ProfileStore interface {
	MentorOf(ctx context.Context, profileID string) (*string, error)
}

// Authorizer evaluates all access policies.
type Authorizer struct {
	members   MembershipStore
	hierarchy HierarchyStore
	profiles  ProfileStore
}

// NewAuthorizer wires the policy layer to its row sources.
func NewAuthorizer(members MembershipStore, hierarchy HierarchyStore, profiles ProfileStore) *Authorizer {
	return &Authorizer{members: members, hierarchy: hierarchy, profiles: profiles}
}

// Authorize returns nil when requester may perform action on res, ErrDenied
// otherwise. It is evaluated on every operation; results are never cached.
func (a *Authorizer) Authorize(ctx context.Context, requesterID string, res Resource, action Action) error {
	if requesterID == "" {
		return ErrDenied
	}

	switch r := res.(type) {
	case ProfileRef:
		return a.profilePolicy(requesterID, r, action)
	case ConversationRef:
		return a.conversationPolicy(ctx, requesterID, r, action)
	case ConversationCreateRef:
		if action != ActionInsert {
			return ErrDenied
		}
		return a.conversationCreatePolicy(ctx, requesterID, r)
	case ParticipantRef:
		if action != ActionRead {
			return ErrDenied
		}
		return a.requireMember(ctx, r.ConversationID, requesterID)
	case MessageRef:
		return a.messagePolicy(ctx, requesterID, r, action)
	case BookmarkRef:
		return ownerPolicy(requesterID, r.OwnerID)
	case FavoriteRef:
		return ownerPolicy(requesterID, r.OwnerID)
	case FolderRef:
		return ownerPolicy(requesterID, r.OwnerID)
	case FolderItemRef:
		return a.folderItemPolicy(ctx, requesterID, r, action)
	case BlobRef:
		return a.blobPolicy(ctx, requesterID, r, action)
	}
	return ErrDenied
}

// Profiles are readable by any authenticated principal; only the owner may
// write. Insert is the 1:1 registration of the requester's own identity.
func (a *Authorizer) profilePolicy(requesterID string, r ProfileRef, action Action) error {
	switch action {
	case ActionRead:
		return nil
	case ActionInsert, ActionUpdate:
		if requesterID == r.ID {
			return nil
		}
	}
	return ErrDenied
}

// Conversation reads are gated by the materialized membership table.
func (a *Authorizer) conversationPolicy(ctx context.Context, requesterID string, r ConversationRef, action Action) error {
	if action != ActionRead {
		return ErrDenied
	}
	return a.requireMember(ctx, r.ID, requesterID)
}

func (a *Authorizer) conversationCreatePolicy(ctx context.Context, requesterID string, r ConversationCreateRef) error {
	if r.ClientID == "" || r.MentorID == "" {
		return ErrDenied
	}
	if requesterID == r.ClientID || requesterID == r.MentorID {
		return nil
	}
	// An already-linked mentor may open the channel with their own client.
	mentorID, err := a.profiles.MentorOf(ctx, r.ClientID)
	if err != nil || mentorID == nil || *mentorID != requesterID {
		return ErrDenied
	}
	return nil
}

// Message reads require materialized membership. Writes additionally require
// sender==requester, with the live hierarchy as a fallback membership source
// so writes keep working even where the snapshot predates the requester.
func (a *Authorizer) messagePolicy(ctx context.Context, requesterID string, r MessageRef, action Action) error {
	switch action {
	case ActionRead:
		return a.requireMember(ctx, r.ConversationID, requesterID)
	case ActionInsert:
		if r.SenderID != requesterID {
			return ErrDenied
		}
		if a.requireMember(ctx, r.ConversationID, requesterID) == nil {
			return nil
		}
		return a.requireLiveMember(ctx, r.ConversationID, requesterID)
	case ActionDelete:
		// Only the sender, no one else, directors included.
		if r.SenderID == requesterID {
			return nil
		}
	}
	return ErrDenied
}

func (a *Authorizer) folderItemPolicy(ctx context.Context, requesterID string, r FolderItemRef, action Action) error {
	if r.FolderOwnerID != requesterID {
		return ErrDenied
	}
	if action == ActionInsert {
		return a.requireMember(ctx, r.ConversationID, requesterID)
	}
	return nil
}

// Blob access is gated by the conversation prefix of the object key. Writes
// also require the uploader to equal the declared object owner.
func (a *Authorizer) blobPolicy(ctx context.Context, requesterID string, r BlobRef, action Action) error {
	switch action {
	case ActionRead:
		return a.requireMember(ctx, r.ConversationID, requesterID)
	case ActionInsert:
		if r.DeclaredOwnerID != requesterID {
			return ErrDenied
		}
		return a.requireMember(ctx, r.ConversationID, requesterID)
	case ActionDelete:
		if r.DeclaredOwnerID != requesterID {
			return ErrDenied
		}
		return a.requireMember(ctx, r.ConversationID, requesterID)
	}
	return ErrDenied
}

func (a *Authorizer) requireMember(ctx context.Context, conversationID, profileID string) error {
	if conversationID == "" {
		return ErrDenied
	}
	ok, err := a.members.IsMember(ctx, conversationID, profileID)
	if err != nil || !ok {
		return ErrDenied
	}
	return nil
}

func (a *Authorizer) requireLiveMember(ctx context.Context, conversationID, profileID string) error {
	clientID, mentorID, directorID, err := a.hierarchy.ConversationRefs(ctx, conversationID)
	if err != nil {
		return ErrDenied
	}
	if profileID == clientID || profileID == mentorID {
		return nil
	}
	if directorID != nil && profileID == *directorID {
		return nil
	}
	return ErrDenied
}

func ownerPolicy(requesterID, ownerID string) error {
	if ownerID == "" || requesterID != ownerID {
		return ErrDenied
	}
	return nil
}
