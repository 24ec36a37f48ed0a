package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/port"
)

// GetProfileInput fetches a single profile by id.
type GetProfileInput struct {
	RequesterID string
	ProfileID   string
}

// GetProfileUseCase returns a profile. Profiles are readable by any
// authenticated principal.
type GetProfileUseCase struct {
	Repo repository.ProfileRepository
	Auth *authz.Authorizer
}

func NewGetProfileUseCase(repo repository.ProfileRepository, auth *authz.Authorizer) *GetProfileUseCase {
	return &GetProfileUseCase{Repo: repo, Auth: auth}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, in GetProfileInput) (*identity.Profile, error) {
	if in.ProfileID == "" {
		return nil, fmt.Errorf("profile id is required")
	}
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.ProfileRef{ID: in.ProfileID}, authz.ActionRead); err != nil {
		return nil, err
	}
	p, err := uc.Repo.GetByID(ctx, in.ProfileID)
	if errors.Is(err, identity.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return p, nil
}
