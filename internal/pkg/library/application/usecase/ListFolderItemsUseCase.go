package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/port"
)

// ListFolderItemsInput lists the messages filed into one of the requester's
// folders.
type ListFolderItemsInput struct {
	RequesterID string
	FolderID    string
}

type ListFolderItemsUseCase struct {
	Repo repository.LibraryRepository
	Auth *authz.Authorizer
}

func NewListFolderItemsUseCase(repo repository.LibraryRepository, auth *authz.Authorizer) *ListFolderItemsUseCase {
	return &ListFolderItemsUseCase{Repo: repo, Auth: auth}
}

func (uc *ListFolderItemsUseCase) Execute(ctx context.Context, in ListFolderItemsInput) ([]library.FolderItem, error) {
	if in.FolderID == "" {
		return nil, fmt.Errorf("folder id is required")
	}
	f, err := uc.Repo.GetFolder(ctx, in.FolderID)
	if errors.Is(err, library.ErrNotFound) {
		return nil, authz.ErrDenied
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.FolderRef{OwnerID: f.OwnerID}, authz.ActionRead); err != nil {
		return nil, err
	}
	out, err := uc.Repo.ListFolderItems(ctx, in.FolderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}
