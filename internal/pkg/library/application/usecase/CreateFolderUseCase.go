package usecase

import (
	"context"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/port"
)

// CreateFolderInput creates a personal folder for grouping messages.
type CreateFolderInput struct {
	RequesterID string
	Name        string
}

type CreateFolderUseCase struct {
	Repo repository.LibraryRepository
	Auth *authz.Authorizer
}

func NewCreateFolderUseCase(repo repository.LibraryRepository, auth *authz.Authorizer) *CreateFolderUseCase {
	return &CreateFolderUseCase{Repo: repo, Auth: auth}
}

func (uc *CreateFolderUseCase) Execute(ctx context.Context, in CreateFolderInput) (*library.Folder, error) {
	f, err := library.NewFolder(in.RequesterID, in.Name)
	if err != nil {
		return nil, err
	}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.FolderRef{OwnerID: f.OwnerID}, authz.ActionInsert); err != nil {
		return nil, err
	}
	created, err := uc.Repo.CreateFolder(ctx, *f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return created, nil
}
