package usecase

import (
	"context"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	message "github.com/gregory413b/voicementor2/internal/pkg/message/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/message/persistence/repository/port"
)

// SendMessageInput persists a new voice or text message. The sender is always
// the requester; the authorizer rejects anything else.
type SendMessageInput struct {
	RequesterID     string
	ConversationID  string
	AudioPath       *string
	Body            *string
	DurationSeconds int32
	Transcript      *string
}

type SendMessageUseCase struct {
	Repo repository.MessageRepository
	Auth *authz.Authorizer
}

func NewSendMessageUseCase(repo repository.MessageRepository, auth *authz.Authorizer) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, Auth: auth}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*message.Message, error) {
	if in.ConversationID == "" || in.RequesterID == "" {
		return nil, fmt.Errorf("conversation_id and requester are required")
	}

	msg, err := message.New(message.Message{
		ConversationID:  in.ConversationID,
		SenderID:        in.RequesterID,
		AudioPath:       in.AudioPath,
		Body:            in.Body,
		DurationSeconds: in.DurationSeconds,
		Transcript:      in.Transcript,
	})
	if err != nil {
		return nil, err
	}

	ref := authz.MessageRef{ConversationID: msg.ConversationID, SenderID: msg.SenderID}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, ref, authz.ActionInsert); err != nil {
		return nil, err
	}

	saved, err := uc.Repo.Save(ctx, *msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return saved, nil
}
