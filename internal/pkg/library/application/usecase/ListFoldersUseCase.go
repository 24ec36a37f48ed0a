package usecase

import (
	"context"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/port"
)

// ListFoldersInput lists the requester's folders.
type ListFoldersInput struct {
	RequesterID string
}

type ListFoldersUseCase struct {
	Repo repository.LibraryRepository
	Auth *authz.Authorizer
}

func NewListFoldersUseCase(repo repository.LibraryRepository, auth *authz.Authorizer) *ListFoldersUseCase {
	return &ListFoldersUseCase{Repo: repo, Auth: auth}
}

func (uc *ListFoldersUseCase) Execute(ctx context.Context, in ListFoldersInput) ([]library.Folder, error) {
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.FolderRef{OwnerID: in.RequesterID}, authz.ActionRead); err != nil {
		return nil, err
	}
	out, err := uc.Repo.ListFolders(ctx, in.RequesterID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}
