package usecase

import (
	"context"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/port"
)

// CreateBookmarkInput annotates a message with a timestamp. Bookmarks are
// strictly owner-private; the owner is always the requester.
type CreateBookmarkInput struct {
	RequesterID   string
	MessageID     string
	OffsetSeconds int32
	Label         string
}

type CreateBookmarkUseCase struct {
	Repo repository.LibraryRepository
	Auth *authz.Authorizer
}

func NewCreateBookmarkUseCase(repo repository.LibraryRepository, auth *authz.Authorizer) *CreateBookmarkUseCase {
	return &CreateBookmarkUseCase{Repo: repo, Auth: auth}
}

func (uc *CreateBookmarkUseCase) Execute(ctx context.Context, in CreateBookmarkInput) (*library.Bookmark, error) {
	b, err := library.NewBookmark(in.MessageID, in.RequesterID, in.OffsetSeconds, in.Label)
	if err != nil {
		return nil, err
	}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.BookmarkRef{OwnerID: b.OwnerID}, authz.ActionInsert); err != nil {
		return nil, err
	}
	created, err := uc.Repo.CreateBookmark(ctx, *b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return created, nil
}
