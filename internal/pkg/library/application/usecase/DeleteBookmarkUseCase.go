package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/port"
)

// DeleteBookmarkInput removes a bookmark owned by the requester. A foreign
// bookmark yields the same denial as a nonexistent one.
type DeleteBookmarkInput struct {
	RequesterID string
	BookmarkID  string
}

type DeleteBookmarkUseCase struct {
	Repo repository.LibraryRepository
	Auth *authz.Authorizer
}

func NewDeleteBookmarkUseCase(repo repository.LibraryRepository, auth *authz.Authorizer) *DeleteBookmarkUseCase {
	return &DeleteBookmarkUseCase{Repo: repo, Auth: auth}
}

func (uc *DeleteBookmarkUseCase) Execute(ctx context.Context, in DeleteBookmarkInput) error {
	if in.BookmarkID == "" {
		return fmt.Errorf("bookmark id is required")
	}
	b, err := uc.Repo.GetBookmark(ctx, in.BookmarkID)
	if errors.Is(err, library.ErrNotFound) {
		return authz.ErrDenied
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.BookmarkRef{OwnerID: b.OwnerID}, authz.ActionDelete); err != nil {
		return err
	}
	if err := uc.Repo.DeleteBookmark(ctx, in.BookmarkID); err != nil && !errors.Is(err, library.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
