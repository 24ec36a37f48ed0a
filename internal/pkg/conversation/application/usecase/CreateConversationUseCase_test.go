package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	conversation "github.com/gregory413b/voicementor2/internal/pkg/conversation/domain"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
)

func ptr(s string) *string { return &s }

// fakeConvRepo implements the conversation repository port in memory.
type fakeConvRepo struct {
	director *identity.Profile
	members  map[string][]string

	created        *conversation.Conversation
	createdMembers []conversation.Participant
}

func (f *fakeConvRepo) Create(_ context.Context, c conversation.Conversation, members []conversation.Participant) (*conversation.Conversation, error) {
	c.ID = "conv-new"
	f.created = &c
	f.createdMembers = members
	return &c, nil
}

func (f *fakeConvRepo) GetByID(_ context.Context, id string) (*conversation.Conversation, error) {
	if f.created != nil && f.created.ID == id {
		return f.created, nil
	}
	return nil, conversation.ErrNotFound
}

func (f *fakeConvRepo) ListForProfile(_ context.Context, _ string) ([]conversation.Conversation, error) {
	return nil, nil
}

func (f *fakeConvRepo) ListParticipants(_ context.Context, _ string) ([]conversation.Participant, error) {
	return f.createdMembers, nil
}

func (f *fakeConvRepo) ResolveDirector(_ context.Context, _ string) (*identity.Profile, error) {
	return f.director, nil
}

func (f *fakeConvRepo) IsMember(_ context.Context, conversationID, profileID string) (bool, error) {
	for _, id := range f.members[conversationID] {
		if id == profileID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeConvRepo) ListMemberIDs(_ context.Context, conversationID string) ([]string, error) {
	return f.members[conversationID], nil
}

func (f *fakeConvRepo) ConversationRefs(_ context.Context, _ string) (string, string, *string, error) {
	return "", "", nil, conversation.ErrNotFound
}

// fakeProfileRepo serves profiles from a map.
type fakeProfileRepo struct {
	profiles map[string]*identity.Profile
}

func (f *fakeProfileRepo) Create(_ context.Context, _ identity.Profile) error { return nil }
func (f *fakeProfileRepo) Upsert(_ context.Context, _ identity.Profile) error { return nil }

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*identity.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, identity.ErrNotFound
}

func (f *fakeProfileRepo) List(_ context.Context) ([]identity.Profile, error) { return nil, nil }
func (f *fakeProfileRepo) UpdateDisplayName(_ context.Context, _, _ string) error {
	return nil
}
func (f *fakeProfileRepo) SetMentor(_ context.Context, _ string, _ *string) error   { return nil }
func (f *fakeProfileRepo) SetDirector(_ context.Context, _ string, _ *string) error { return nil }

func (f *fakeProfileRepo) MentorOf(_ context.Context, id string) (*string, error) {
	if p, ok := f.profiles[id]; ok {
		return p.MentorID, nil
	}
	return nil, identity.ErrNotFound
}

func testProfiles(directorAssigned bool) *fakeProfileRepo {
	var directorID *string
	if directorAssigned {
		directorID = ptr("director")
	}
	return &fakeProfileRepo{profiles: map[string]*identity.Profile{
		"client":   {ID: "client", Role: identity.RoleClient, MentorID: ptr("mentor")},
		"mentor":   {ID: "mentor", Role: identity.RoleMentor, DirectorID: directorID},
		"director": {ID: "director", Role: identity.RoleTrainingDirector},
	}}
}

func newUseCase(convs *fakeConvRepo, profiles *fakeProfileRepo) *CreateConversationUseCase {
	auth := authz.NewAuthorizer(convs, convs, profiles)
	return NewCreateConversationUseCase(convs, profiles, auth)
}

func TestCreateConversationMaterializesThreeMembers(t *testing.T) {
	profiles := testProfiles(true)
	convs := &fakeConvRepo{director: profiles.profiles["director"]}
	uc := newUseCase(convs, profiles)

	conv, err := uc.Execute(context.Background(), CreateConversationInput{
		RequesterID: "client",
		ClientID:    "client",
		MentorID:    "mentor",
	})
	require.NoError(t, err)
	assert.Equal(t, "conv-new", conv.ID)

	require.Len(t, convs.createdMembers, 3)
	roles := make(map[string]identity.Role, 3)
	for _, m := range convs.createdMembers {
		roles[m.ProfileID] = m.Role
	}
	assert.Equal(t, identity.RoleClient, roles["client"])
	assert.Equal(t, identity.RoleMentor, roles["mentor"])
	assert.Equal(t, identity.RoleTrainingDirector, roles["director"])
}

func TestCreateConversationWithoutDirector(t *testing.T) {
	profiles := testProfiles(false)
	convs := &fakeConvRepo{director: nil}
	uc := newUseCase(convs, profiles)

	_, err := uc.Execute(context.Background(), CreateConversationInput{
		RequesterID: "mentor",
		ClientID:    "client",
		MentorID:    "mentor",
	})
	require.NoError(t, err)
	require.Len(t, convs.createdMembers, 2)
}

func TestCreateConversationDeniesStranger(t *testing.T) {
	profiles := testProfiles(true)
	convs := &fakeConvRepo{director: profiles.profiles["director"]}
	uc := newUseCase(convs, profiles)

	_, err := uc.Execute(context.Background(), CreateConversationInput{
		RequesterID: "director",
		ClientID:    "client",
		MentorID:    "mentor",
	})
	assert.ErrorIs(t, err, authz.ErrDenied)
	assert.Nil(t, convs.created)
}

func TestCreateConversationRejectsWrongRoles(t *testing.T) {
	profiles := testProfiles(true)
	convs := &fakeConvRepo{}
	uc := newUseCase(convs, profiles)

	// Mentor passed where the client should be.
	_, err := uc.Execute(context.Background(), CreateConversationInput{
		RequesterID: "mentor",
		ClientID:    "mentor",
		MentorID:    "mentor",
	})
	assert.ErrorIs(t, err, conversation.ErrRoleMismatch)

	// Unknown mentor id.
	_, err = uc.Execute(context.Background(), CreateConversationInput{
		RequesterID: "client",
		ClientID:    "client",
		MentorID:    "ghost",
	})
	assert.ErrorIs(t, err, conversation.ErrRoleMismatch)
}
