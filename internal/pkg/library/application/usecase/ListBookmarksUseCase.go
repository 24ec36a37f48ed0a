package usecase

import (
	"context"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/port"
)

// ListBookmarksInput lists the requester's bookmarks, optionally filtered by
// message.
type ListBookmarksInput struct {
	RequesterID string
	MessageID   *string
}

type ListBookmarksUseCase struct {
	Repo repository.LibraryRepository
	Auth *authz.Authorizer
}

func NewListBookmarksUseCase(repo repository.LibraryRepository, auth *authz.Authorizer) *ListBookmarksUseCase {
	return &ListBookmarksUseCase{Repo: repo, Auth: auth}
}

func (uc *ListBookmarksUseCase) Execute(ctx context.Context, in ListBookmarksInput) ([]library.Bookmark, error) {
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.BookmarkRef{OwnerID: in.RequesterID}, authz.ActionRead); err != nil {
		return nil, err
	}
	out, err := uc.Repo.ListBookmarks(ctx, in.RequesterID, in.MessageID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}
