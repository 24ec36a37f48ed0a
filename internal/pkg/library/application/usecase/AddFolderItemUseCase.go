package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/port"
)

// AddFolderItemInput files a message into one of the requester's folders.
// The requester must own the folder and still be a participant of the
// conversation the message belongs to; filing does not widen read access.
type AddFolderItemInput struct {
	RequesterID string
	FolderID    string
	MessageID   string
}

type AddFolderItemUseCase struct {
	Repo repository.LibraryRepository
	Auth *authz.Authorizer
}

func NewAddFolderItemUseCase(repo repository.LibraryRepository, auth *authz.Authorizer) *AddFolderItemUseCase {
	return &AddFolderItemUseCase{Repo: repo, Auth: auth}
}

func (uc *AddFolderItemUseCase) Execute(ctx context.Context, in AddFolderItemInput) (*library.FolderItem, error) {
	if in.FolderID == "" || in.MessageID == "" {
		return nil, library.ErrMissingRefs
	}
	f, err := uc.Repo.GetFolder(ctx, in.FolderID)
	if errors.Is(err, library.ErrNotFound) {
		return nil, authz.ErrDenied
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	convID, err := uc.Repo.ConversationOf(ctx, in.MessageID)
	if errors.Is(err, library.ErrNotFound) {
		return nil, authz.ErrDenied
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	ref := authz.FolderItemRef{FolderOwnerID: f.OwnerID, ConversationID: convID}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, ref, authz.ActionInsert); err != nil {
		return nil, err
	}
	item := library.FolderItem{FolderID: in.FolderID, MessageID: in.MessageID}
	if err := uc.Repo.AddFolderItem(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &item, nil
}
