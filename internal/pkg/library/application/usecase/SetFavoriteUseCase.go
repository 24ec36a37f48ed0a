package usecase

import (
	"context"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/port"
)

// SetFavoriteInput marks a message as a favorite of the requester.
// Idempotent: re-marking is a no-op.
type SetFavoriteInput struct {
	RequesterID string
	MessageID   string
}

type SetFavoriteUseCase struct {
	Repo repository.LibraryRepository
	Auth *authz.Authorizer
}

func NewSetFavoriteUseCase(repo repository.LibraryRepository, auth *authz.Authorizer) *SetFavoriteUseCase {
	return &SetFavoriteUseCase{Repo: repo, Auth: auth}
}

func (uc *SetFavoriteUseCase) Execute(ctx context.Context, in SetFavoriteInput) (*library.Favorite, error) {
	if in.MessageID == "" {
		return nil, fmt.Errorf("message id is required")
	}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.FavoriteRef{OwnerID: in.RequesterID}, authz.ActionInsert); err != nil {
		return nil, err
	}
	f := library.Favorite{OwnerID: in.RequesterID, MessageID: in.MessageID}
	if err := uc.Repo.SetFavorite(ctx, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &f, nil
}
