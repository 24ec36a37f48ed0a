package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/port"
)

// RemoveFolderItemInput removes a message from one of the requester's folders.
type RemoveFolderItemInput struct {
	RequesterID string
	FolderID    string
	MessageID   string
}

type RemoveFolderItemUseCase struct {
	Repo repository.LibraryRepository
	Auth *authz.Authorizer
}

func NewRemoveFolderItemUseCase(repo repository.LibraryRepository, auth *authz.Authorizer) *RemoveFolderItemUseCase {
	return &RemoveFolderItemUseCase{Repo: repo, Auth: auth}
}

func (uc *RemoveFolderItemUseCase) Execute(ctx context.Context, in RemoveFolderItemInput) error {
	if in.FolderID == "" || in.MessageID == "" {
		return library.ErrMissingRefs
	}
	f, err := uc.Repo.GetFolder(ctx, in.FolderID)
	if errors.Is(err, library.ErrNotFound) {
		return authz.ErrDenied
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.FolderRef{OwnerID: f.OwnerID}, authz.ActionDelete); err != nil {
		return err
	}
	if err := uc.Repo.RemoveFolderItem(ctx, in.FolderID, in.MessageID); err != nil && !errors.Is(err, library.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
