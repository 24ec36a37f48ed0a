package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/port"
)

// DeleteFolderInput removes a folder and, via cascade, its items. A foreign
// folder yields the same denial as a nonexistent one.
type DeleteFolderInput struct {
	RequesterID string
	FolderID    string
}

type DeleteFolderUseCase struct {
	Repo repository.LibraryRepository
	Auth *authz.Authorizer
}

func NewDeleteFolderUseCase(repo repository.LibraryRepository, auth *authz.Authorizer) *DeleteFolderUseCase {
	return &DeleteFolderUseCase{Repo: repo, Auth: auth}
}

func (uc *DeleteFolderUseCase) Execute(ctx context.Context, in DeleteFolderInput) error {
	if in.FolderID == "" {
		return fmt.Errorf("folder id is required")
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
	if err := uc.Repo.DeleteFolder(ctx, in.FolderID); err != nil && !errors.Is(err, library.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
