package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cacheport "github.com/gregory413b/voicementor2/internal/infrastructure/cache/port"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/port"
)

// UpdateDisplayNameInput renames a profile. Owner only.
type UpdateDisplayNameInput struct {
	RequesterID string
	ProfileID   string
	DisplayName string
}

type UpdateDisplayNameUseCase struct {
	Repo  repository.ProfileRepository
	Auth  *authz.Authorizer
	Cache cacheport.Cache
}

func NewUpdateDisplayNameUseCase(repo repository.ProfileRepository, auth *authz.Authorizer, cache cacheport.Cache) *UpdateDisplayNameUseCase {
	return &UpdateDisplayNameUseCase{Repo: repo, Auth: auth, Cache: cache}
}

func (uc *UpdateDisplayNameUseCase) Execute(ctx context.Context, in UpdateDisplayNameInput) error {
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return identity.ErrEmptyName
	}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.ProfileRef{ID: in.ProfileID}, authz.ActionUpdate); err != nil {
		return err
	}
	if err := uc.Repo.UpdateDisplayName(ctx, in.ProfileID, name); err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	InvalidateDirectory(ctx, uc.Cache)
	return nil
}
