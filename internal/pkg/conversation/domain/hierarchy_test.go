package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
)

func ptr(s string) *string { return &s }

func TestIsMember(t *testing.T) {
	conv := Conversation{ID: "conv-1", ClientID: "client", MentorID: "mentor"}
	director := ptr("director")

	tests := []struct {
		name       string
		principal  string
		directorID *string
		want       bool
	}{
		{"client is member", "client", director, true},
		{"mentor is member", "mentor", director, true},
		{"resolved director is member", "director", director, true},
		{"stranger is not", "stranger", director, false},
		{"no director assigned", "director", nil, false},
		{"empty principal", "", director, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsMember(tc.principal, conv, tc.directorID))
		})
	}
}

func TestCanCreate(t *testing.T) {
	client := &identity.Profile{ID: "client", Role: identity.RoleClient, MentorID: ptr("mentor")}

	tests := []struct {
		name      string
		requester string
		client    *identity.Profile
		want      bool
	}{
		{"client opens own channel", "client", client, true},
		{"named mentor opens channel", "mentor", client, true},
		{"linked mentor not named in pair", "mentor", &identity.Profile{ID: "client", MentorID: ptr("mentor")}, true},
		{"director cannot open", "director", client, false},
		{"stranger cannot open", "stranger", client, false},
		{"unresolvable client rules out linked path", "other", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanCreate(tc.requester, "client", "mentor", tc.client))
		})
	}

	assert.False(t, CanCreate("client", "", "mentor", client))
	assert.False(t, CanCreate("client", "client", "", client))
}

func TestMaterializeMembersWithDirector(t *testing.T) {
	conv := Conversation{ID: "conv-1", ClientID: "client", MentorID: "mentor"}
	director := &identity.Profile{ID: "director", Role: identity.RoleTrainingDirector}

	members := MaterializeMembers(conv, director)
	require.Len(t, members, 3)

	byProfile := make(map[string]identity.Role, len(members))
	for _, m := range members {
		assert.Equal(t, "conv-1", m.ConversationID)
		byProfile[m.ProfileID] = m.Role
	}
	assert.Equal(t, identity.RoleClient, byProfile["client"])
	assert.Equal(t, identity.RoleMentor, byProfile["mentor"])
	assert.Equal(t, identity.RoleTrainingDirector, byProfile["director"])
}

func TestMaterializeMembersWithoutDirector(t *testing.T) {
	conv := Conversation{ID: "conv-1", ClientID: "client", MentorID: "mentor"}

	members := MaterializeMembers(conv, nil)
	require.Len(t, members, 2)

	// A resolved profile that is not actually a training director yields no
	// third row either.
	notDirector := &identity.Profile{ID: "someone", Role: identity.RoleMentor}
	members = MaterializeMembers(conv, notDirector)
	require.Len(t, members, 2)
}
