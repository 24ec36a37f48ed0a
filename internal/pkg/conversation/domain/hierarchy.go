package conversation

import (
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
)

// Hierarchy resolver: ground-truth membership predicates derived purely from
// profile and conversation values, independent of the materialized snapshot.

// IsMember reports whether principalID may access conv. True iff the
// principal is the conversation's client, its mentor, or the training
// director the mentor currently points at. directorID is the mentor's
// resolved director reference; nil (unassigned or dangling) simply yields no
// director membership.
func IsMember(principalID string, conv Conversation, directorID *string) bool {
	if principalID == "" {
		return false
	}
	if principalID == conv.ClientID || principalID == conv.MentorID {
		return true
	}
	return directorID != nil && principalID == *directorID
}

// CanCreate reports whether requesterID may open a channel between clientID
// and mentorID. True iff the requester is the client, the mentor, or the
// mentor already linked to that client. client is the client's profile; nil
// means the client could not be resolved, which only rules out the
// linked-mentor path.
func CanCreate(requesterID, clientID, mentorID string, client *identity.Profile) bool {
	if requesterID == "" || clientID == "" || mentorID == "" {
		return false
	}
	if requesterID == clientID || requesterID == mentorID {
		return true
	}
	return client != nil && client.MentorID != nil && *client.MentorID == requesterID
}

// MaterializeMembers computes the membership snapshot for a freshly created
// conversation: one client row, one mentor row, and a director row iff the
// mentor's director resolves to an existing training director right now.
func MaterializeMembers(conv Conversation, director *identity.Profile) []Participant {
	members := []Participant{
		{ConversationID: conv.ID, ProfileID: conv.ClientID, Role: identity.RoleClient},
		{ConversationID: conv.ID, ProfileID: conv.MentorID, Role: identity.RoleMentor},
	}
	if director != nil && director.Role == identity.RoleTrainingDirector {
		members = append(members, Participant{
			ConversationID: conv.ID,
			ProfileID:      director.ID,
			Role:           identity.RoleTrainingDirector,
		})
	}
	return members
}
