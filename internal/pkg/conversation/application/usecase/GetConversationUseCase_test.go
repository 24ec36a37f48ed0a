package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
)

func TestGetConversationForMember(t *testing.T) {
	profiles := testProfiles(true)
	convs := &fakeConvRepo{director: profiles.profiles["director"]}
	create := newUseCase(convs, profiles)

	created, err := create.Execute(context.Background(), CreateConversationInput{
		RequesterID: "client",
		ClientID:    "client",
		MentorID:    "mentor",
	})
	require.NoError(t, err)
	convs.members = map[string][]string{created.ID: {"client", "mentor", "director"}}

	uc := NewGetConversationUseCase(convs, authz.NewAuthorizer(convs, convs, profiles))
	got, err := uc.Execute(context.Background(), GetConversationInput{
		RequesterID:    "client",
		ConversationID: created.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestGetConversationDeniesNonMember(t *testing.T) {
	profiles := testProfiles(true)
	convs := &fakeConvRepo{members: map[string][]string{"conv-1": {"client", "mentor"}}}

	uc := NewGetConversationUseCase(convs, authz.NewAuthorizer(convs, convs, profiles))
	_, err := uc.Execute(context.Background(), GetConversationInput{
		RequesterID:    "director",
		ConversationID: "conv-1",
	})
	assert.ErrorIs(t, err, authz.ErrDenied)
}

func TestGetConversationDeletedAfterMembershipCheck(t *testing.T) {
	// Membership says yes, but the row is gone by the time it is loaded.
	// The caller must see the same denial as for a conversation that never
	// existed, not an internal error.
	profiles := testProfiles(true)
	convs := &fakeConvRepo{members: map[string][]string{"conv-1": {"client", "mentor"}}}

	uc := NewGetConversationUseCase(convs, authz.NewAuthorizer(convs, convs, profiles))
	_, err := uc.Execute(context.Background(), GetConversationInput{
		RequesterID:    "client",
		ConversationID: "conv-1",
	})
	assert.ErrorIs(t, err, authz.ErrDenied)
	assert.NotErrorIs(t, err, ErrPersistence)
}
