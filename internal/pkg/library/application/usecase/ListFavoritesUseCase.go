package usecase

import (
	"context"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/library/persistence/repository/port"
)

// ListFavoritesInput lists the requester's favorites.
type ListFavoritesInput struct {
	RequesterID string
}

type ListFavoritesUseCase struct {
	Repo repository.LibraryRepository
	Auth *authz.Authorizer
}

func NewListFavoritesUseCase(repo repository.LibraryRepository, auth *authz.Authorizer) *ListFavoritesUseCase {
	return &ListFavoritesUseCase{Repo: repo, Auth: auth}
}

func (uc *ListFavoritesUseCase) Execute(ctx context.Context, in ListFavoritesInput) ([]library.Favorite, error) {
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.FavoriteRef{OwnerID: in.RequesterID}, authz.ActionRead); err != nil {
		return nil, err
	}
	out, err := uc.Repo.ListFavorites(ctx, in.RequesterID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}
