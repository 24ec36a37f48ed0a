package usecase

import (
	"context"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	repository "github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/port"
)

// UnsetFavoriteInput removes the requester's favorite marker from a message.
type UnsetFavoriteInput struct {
	RequesterID string
	MessageID   string
}

type UnsetFavoriteUseCase struct {
	Repo repository.LibraryRepository
	Auth *authz.Authorizer
}

func NewUnsetFavoriteUseCase(repo repository.LibraryRepository, auth *authz.Authorizer) *UnsetFavoriteUseCase {
	return &UnsetFavoriteUseCase{Repo: repo, Auth: auth}
}

func (uc *UnsetFavoriteUseCase) Execute(ctx context.Context, in UnsetFavoriteInput) error {
	if in.MessageID == "" {
		return fmt.Errorf("message id is required")
	}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.FavoriteRef{OwnerID: in.RequesterID}, authz.ActionDelete); err != nil {
		return err
	}
	if err := uc.Repo.UnsetFavorite(ctx, in.RequesterID, in.MessageID); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
