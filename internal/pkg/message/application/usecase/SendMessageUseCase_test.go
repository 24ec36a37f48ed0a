package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	message "github.com/gregory413b/voicementor2/internal/pkg/message/domain"
)

func ptr(s string) *string { return &s }

// fakeAccess backs the authorizer: a membership snapshot plus a live
// hierarchy answer.
type fakeAccess struct {
	members  map[string][]string
	client   string
	mentor   string
	director *string
}

func (f *fakeAccess) IsMember(_ context.Context, conversationID, profileID string) (bool, error) {
	for _, id := range f.members[conversationID] {
		if id == profileID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccess) ListMemberIDs(_ context.Context, conversationID string) ([]string, error) {
	return f.members[conversationID], nil
}

func (f *fakeAccess) ConversationRefs(_ context.Context, _ string) (string, string, *string, error) {
	if f.client == "" {
		return "", "", nil, errors.New("no such conversation")
	}
	return f.client, f.mentor, f.director, nil
}

func (f *fakeAccess) MentorOf(_ context.Context, _ string) (*string, error) { return nil, nil }

// fakeMessageRepo stores messages in a map keyed by id.
type fakeMessageRepo struct {
	saved   []message.Message
	byID    map[string]*message.Message
	deleted []string
}

func (f *fakeMessageRepo) Save(_ context.Context, m message.Message) (*message.Message, error) {
	m.ID = "msg-new"
	f.saved = append(f.saved, m)
	return &m, nil
}

func (f *fakeMessageRepo) GetByID(_ context.Context, id string) (*message.Message, error) {
	if m, ok := f.byID[id]; ok {
		return m, nil
	}
	return nil, message.ErrNotFound
}

func (f *fakeMessageRepo) ListByConversation(_ context.Context, _ string, _, _ int) ([]message.Message, error) {
	return f.saved, nil
}

func (f *fakeMessageRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return message.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestSendMessageAsMember(t *testing.T) {
	access := &fakeAccess{members: map[string][]string{"conv-1": {"client", "mentor"}}}
	repo := &fakeMessageRepo{}
	uc := NewSendMessageUseCase(repo, authz.NewAuthorizer(access, access, access))

	msg, err := uc.Execute(context.Background(), SendMessageInput{
		RequesterID:     "client",
		ConversationID:  "conv-1",
		AudioPath:       ptr("conv-1/a.m4a"),
		DurationSeconds: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-new", msg.ID)
	assert.Equal(t, "client", msg.SenderID)
	require.Len(t, repo.saved, 1)
}

func TestSendMessageDeniesNonMember(t *testing.T) {
	access := &fakeAccess{members: map[string][]string{"conv-1": {"client", "mentor"}}}
	repo := &fakeMessageRepo{}
	uc := NewSendMessageUseCase(repo, authz.NewAuthorizer(access, access, access))

	_, err := uc.Execute(context.Background(), SendMessageInput{
		RequesterID:    "stranger",
		ConversationID: "conv-1",
		Body:           ptr("hi"),
	})
	assert.ErrorIs(t, err, authz.ErrDenied)
	assert.Empty(t, repo.saved)
}

func TestSendMessageFallsBackToLiveHierarchy(t *testing.T) {
	// Director missing from the snapshot but present in the live hierarchy.
	access := &fakeAccess{
		members:  map[string][]string{"conv-1": {"client", "mentor"}},
		client:   "client",
		mentor:   "mentor",
		director: ptr("director"),
	}
	repo := &fakeMessageRepo{}
	uc := NewSendMessageUseCase(repo, authz.NewAuthorizer(access, access, access))

	_, err := uc.Execute(context.Background(), SendMessageInput{
		RequesterID:    "director",
		ConversationID: "conv-1",
		Body:           ptr("checking in"),
	})
	assert.NoError(t, err)
}

func TestSendMessageValidatesContents(t *testing.T) {
	access := &fakeAccess{members: map[string][]string{"conv-1": {"client"}}}
	repo := &fakeMessageRepo{}
	uc := NewSendMessageUseCase(repo, authz.NewAuthorizer(access, access, access))
	ctx := context.Background()

	_, err := uc.Execute(ctx, SendMessageInput{RequesterID: "client", ConversationID: "conv-1"})
	assert.ErrorIs(t, err, message.ErrEmpty)

	_, err = uc.Execute(ctx, SendMessageInput{
		RequesterID:     "client",
		ConversationID:  "conv-1",
		AudioPath:       ptr("conv-1/a.m4a"),
		Body:            ptr("both"),
		DurationSeconds: 5,
	})
	assert.ErrorIs(t, err, message.ErrBothContents)

	_, err = uc.Execute(ctx, SendMessageInput{
		RequesterID:     "client",
		ConversationID:  "conv-1",
		AudioPath:       ptr("conv-1/a.m4a"),
		DurationSeconds: message.MaxDurationSeconds + 1,
	})
	assert.ErrorIs(t, err, message.ErrInvalidDuration)
}
