package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	message "github.com/gregory413b/voicementor2/internal/pkg/message/domain"
)

func deleteFixture() (*fakeMessageRepo, *DeleteMessageUseCase) {
	access := &fakeAccess{members: map[string][]string{"conv-1": {"client", "mentor", "director"}}}
	repo := &fakeMessageRepo{byID: map[string]*message.Message{
		"msg-1": {
			ID:              "msg-1",
			ConversationID:  "conv-1",
			SenderID:        "client",
			AudioPath:       ptr("conv-1/a.m4a"),
			DurationSeconds: 30,
		},
	}}
	return repo, NewDeleteMessageUseCase(repo, authz.NewAuthorizer(access, access, access))
}

func TestDeleteMessageBySender(t *testing.T) {
	repo, uc := deleteFixture()

	msg, err := uc.Execute(context.Background(), DeleteMessageInput{
		RequesterID: "client",
		MessageID:   "msg-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "conv-1/a.m4a", *msg.AudioPath)
	assert.Equal(t, []string{"msg-1"}, repo.deleted)
}

func TestDeleteMessageDeniedForNonSender(t *testing.T) {
	repo, uc := deleteFixture()

	// Members who did not send the message get the same answer as for a
	// message that does not exist.
	for _, requester := range []string{"mentor", "director", "stranger"} {
		_, err := uc.Execute(context.Background(), DeleteMessageInput{
			RequesterID: requester,
			MessageID:   "msg-1",
		})
		assert.ErrorIs(t, err, authz.ErrDenied, "requester %s", requester)
	}
	assert.Empty(t, repo.deleted)

	_, err := uc.Execute(context.Background(), DeleteMessageInput{
		RequesterID: "client",
		MessageID:   "msg-404",
	})
	assert.ErrorIs(t, err, authz.ErrDenied)
}
