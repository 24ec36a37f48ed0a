package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStores struct {
	members    map[string][]string // conversation ID -> member profile IDs
	hierarchy  map[string][3]*string
	mentors    map[string]*string // client ID -> mentor ID
	memberErr  error
	refsErr    error
	mentorsErr error
}

func (f *fakeStores) IsMember(_ context.Context, conversationID, profileID string) (bool, error) {
	if f.memberErr != nil {
		return false, f.memberErr
	}
	for _, id := range f.members[conversationID] {
		if id == profileID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStores) ListMemberIDs(_ context.Context, conversationID string) ([]string, error) {
	if f.memberErr != nil {
		return nil, f.memberErr
	}
	return f.members[conversationID], nil
}

func (f *fakeStores) ConversationRefs(_ context.Context, conversationID string) (string, string, *string, error) {
	if f.refsErr != nil {
		return "", "", nil, f.refsErr
	}
	refs, ok := f.hierarchy[conversationID]
	if !ok {
		return "", "", nil, errors.New("no such conversation")
	}
	return deref(refs[0]), deref(refs[1]), refs[2], nil
}

func (f *fakeStores) MentorOf(_ context.Context, profileID string) (*string, error) {
	if f.mentorsErr != nil {
		return nil, f.mentorsErr
	}
	return f.mentors[profileID], nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr(s string) *string { return &s }

func newTestAuthorizer(f *fakeStores) *Authorizer {
	return NewAuthorizer(f, f, f)
}

func TestProfilePolicy(t *testing.T) {
	auth := newTestAuthorizer(&fakeStores{})
	ctx := context.Background()

	assert.NoError(t, auth.Authorize(ctx, "alice", ProfileRef{ID: "bob"}, ActionRead))
	assert.NoError(t, auth.Authorize(ctx, "alice", ProfileRef{ID: "alice"}, ActionUpdate))
	assert.ErrorIs(t, auth.Authorize(ctx, "alice", ProfileRef{ID: "bob"}, ActionUpdate), ErrDenied)
	assert.ErrorIs(t, auth.Authorize(ctx, "alice", ProfileRef{ID: "bob"}, ActionInsert), ErrDenied)
	assert.ErrorIs(t, auth.Authorize(ctx, "", ProfileRef{ID: "alice"}, ActionRead), ErrDenied)
}

func TestConversationReadRequiresMembership(t *testing.T) {
	f := &fakeStores{members: map[string][]string{"conv-1": {"client", "mentor", "director"}}}
	auth := newTestAuthorizer(f)
	ctx := context.Background()

	assert.NoError(t, auth.Authorize(ctx, "client", ConversationRef{ID: "conv-1"}, ActionRead))
	assert.NoError(t, auth.Authorize(ctx, "director", ConversationRef{ID: "conv-1"}, ActionRead))
	assert.ErrorIs(t, auth.Authorize(ctx, "stranger", ConversationRef{ID: "conv-1"}, ActionRead), ErrDenied)

	// Nonexistent and denied are indistinguishable.
	assert.ErrorIs(t, auth.Authorize(ctx, "client", ConversationRef{ID: "conv-404"}, ActionRead), ErrDenied)
}

func TestConversationReadFailsClosedOnStoreError(t *testing.T) {
	f := &fakeStores{
		members:   map[string][]string{"conv-1": {"client"}},
		memberErr: errors.New("db down"),
	}
	auth := newTestAuthorizer(f)

	err := auth.Authorize(context.Background(), "client", ConversationRef{ID: "conv-1"}, ActionRead)
	assert.ErrorIs(t, err, ErrDenied)
}

func TestConversationCreatePolicy(t *testing.T) {
	f := &fakeStores{mentors: map[string]*string{"client": ptr("mentor")}}
	auth := newTestAuthorizer(f)
	ctx := context.Background()
	ref := ConversationCreateRef{ClientID: "client", MentorID: "mentor"}

	assert.NoError(t, auth.Authorize(ctx, "client", ref, ActionInsert))
	assert.NoError(t, auth.Authorize(ctx, "mentor", ref, ActionInsert))
	assert.ErrorIs(t, auth.Authorize(ctx, "stranger", ref, ActionInsert), ErrDenied)

	// A mentor linked to the client may open the channel even when named as
	// neither party of the ref; an unlinked mentor may not.
	unnamed := ConversationCreateRef{ClientID: "client", MentorID: "third"}
	assert.NoError(t, auth.Authorize(ctx, "mentor", unnamed, ActionInsert))
	assert.ErrorIs(t, auth.Authorize(ctx, "other-mentor", unnamed, ActionInsert), ErrDenied)

	assert.ErrorIs(t, auth.Authorize(ctx, "client", ref, ActionRead), ErrDenied)
}

func TestMessageInsertFallsBackToLiveHierarchy(t *testing.T) {
	directorID := ptr("director")
	f := &fakeStores{
		// Snapshot predates the director: not in the membership table.
		members: map[string][]string{"conv-1": {"client", "mentor"}},
		hierarchy: map[string][3]*string{
			"conv-1": {ptr("client"), ptr("mentor"), directorID},
		},
	}
	auth := newTestAuthorizer(f)
	ctx := context.Background()

	ref := MessageRef{ConversationID: "conv-1", SenderID: "director"}
	assert.NoError(t, auth.Authorize(ctx, "director", ref, ActionInsert))

	// But reads stay on the snapshot.
	assert.ErrorIs(t, auth.Authorize(ctx, "director", MessageRef{ConversationID: "conv-1"}, ActionRead), ErrDenied)
}

func TestMessageInsertRequiresSenderIdentity(t *testing.T) {
	f := &fakeStores{members: map[string][]string{"conv-1": {"client", "mentor"}}}
	auth := newTestAuthorizer(f)
	ctx := context.Background()

	// Spoofed sender: requester is a member but claims another sender id.
	ref := MessageRef{ConversationID: "conv-1", SenderID: "mentor"}
	assert.ErrorIs(t, auth.Authorize(ctx, "client", ref, ActionInsert), ErrDenied)

	assert.NoError(t, auth.Authorize(ctx, "mentor", ref, ActionInsert))
}

func TestMessageDeleteIsSenderOnly(t *testing.T) {
	f := &fakeStores{members: map[string][]string{"conv-1": {"client", "mentor", "director"}}}
	auth := newTestAuthorizer(f)
	ctx := context.Background()
	ref := MessageRef{ConversationID: "conv-1", SenderID: "client"}

	assert.NoError(t, auth.Authorize(ctx, "client", ref, ActionDelete))
	assert.ErrorIs(t, auth.Authorize(ctx, "mentor", ref, ActionDelete), ErrDenied)
	assert.ErrorIs(t, auth.Authorize(ctx, "director", ref, ActionDelete), ErrDenied)
}

func TestOwnerPrivateResources(t *testing.T) {
	auth := newTestAuthorizer(&fakeStores{})
	ctx := context.Background()

	for _, res := range []Resource{
		BookmarkRef{OwnerID: "alice"},
		FavoriteRef{OwnerID: "alice"},
		FolderRef{OwnerID: "alice"},
	} {
		assert.NoError(t, auth.Authorize(ctx, "alice", res, ActionRead))
		assert.NoError(t, auth.Authorize(ctx, "alice", res, ActionDelete))
		assert.ErrorIs(t, auth.Authorize(ctx, "bob", res, ActionRead), ErrDenied)
		assert.ErrorIs(t, auth.Authorize(ctx, "bob", res, ActionDelete), ErrDenied)
	}

	// Empty owner never matches anything.
	assert.ErrorIs(t, auth.Authorize(ctx, "alice", BookmarkRef{}, ActionRead), ErrDenied)
}

func TestFolderItemInsertNeedsOwnershipAndMembership(t *testing.T) {
	f := &fakeStores{members: map[string][]string{"conv-1": {"alice", "mentor"}}}
	auth := newTestAuthorizer(f)
	ctx := context.Background()

	ok := FolderItemRef{FolderOwnerID: "alice", ConversationID: "conv-1"}
	require.NoError(t, auth.Authorize(ctx, "alice", ok, ActionInsert))

	// Foreign folder.
	foreign := FolderItemRef{FolderOwnerID: "bob", ConversationID: "conv-1"}
	assert.ErrorIs(t, auth.Authorize(ctx, "alice", foreign, ActionInsert), ErrDenied)

	// Own folder, but the requester lost access to the conversation.
	gone := FolderItemRef{FolderOwnerID: "alice", ConversationID: "conv-2"}
	assert.ErrorIs(t, auth.Authorize(ctx, "alice", gone, ActionInsert), ErrDenied)
}

func TestBlobPolicy(t *testing.T) {
	f := &fakeStores{members: map[string][]string{"conv-1": {"alice", "mentor"}}}
	auth := newTestAuthorizer(f)
	ctx := context.Background()

	read := BlobRef{ConversationID: "conv-1"}
	assert.NoError(t, auth.Authorize(ctx, "alice", read, ActionRead))
	assert.ErrorIs(t, auth.Authorize(ctx, "stranger", read, ActionRead), ErrDenied)

	write := BlobRef{ConversationID: "conv-1", DeclaredOwnerID: "alice"}
	assert.NoError(t, auth.Authorize(ctx, "alice", write, ActionInsert))

	// Declared owner mismatch, even for a member.
	spoofed := BlobRef{ConversationID: "conv-1", DeclaredOwnerID: "alice"}
	assert.ErrorIs(t, auth.Authorize(ctx, "mentor", spoofed, ActionInsert), ErrDenied)

	// Member of nothing cannot write under the prefix.
	outside := BlobRef{ConversationID: "conv-2", DeclaredOwnerID: "alice"}
	assert.ErrorIs(t, auth.Authorize(ctx, "alice", outside, ActionInsert), ErrDenied)
}
