package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/port"
)

// RegisterProfileInput creates the 1:1 profile for a freshly authenticated
// identity. The requester id becomes the profile id.
type RegisterProfileInput struct {
	RequesterID string
	DisplayName string
	Role        identity.Role
	MentorID    *string
	DirectorID  *string
}

// RegisterProfileUseCase creates a profile exactly once per identity and
// verifies the roles of any hierarchy references.
type RegisterProfileUseCase struct {
	Repo repository.ProfileRepository
	Auth *authz.Authorizer
}

func NewRegisterProfileUseCase(repo repository.ProfileRepository, auth *authz.Authorizer) *RegisterProfileUseCase {
	return &RegisterProfileUseCase{Repo: repo, Auth: auth}
}

func (uc *RegisterProfileUseCase) Execute(ctx context.Context, in RegisterProfileInput) (*identity.Profile, error) {
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.ProfileRef{ID: in.RequesterID}, authz.ActionInsert); err != nil {
		return nil, err
	}

	p, err := identity.NewProfile(in.RequesterID, in.DisplayName, in.Role, in.MentorID, in.DirectorID)
	if err != nil {
		return nil, err
	}

	if p.MentorID != nil {
		if err := uc.requireRole(ctx, *p.MentorID, identity.RoleMentor); err != nil {
			return nil, err
		}
	}
	if p.DirectorID != nil {
		if err := uc.requireRole(ctx, *p.DirectorID, identity.RoleTrainingDirector); err != nil {
			return nil, err
		}
	}

	if err := uc.Repo.Create(ctx, *p); err != nil {
		if errors.Is(err, identity.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return p, nil
}

func (uc *RegisterProfileUseCase) requireRole(ctx context.Context, id string, want identity.Role) error {
	ref, err := uc.Repo.GetByID(ctx, id)
	if errors.Is(err, identity.ErrNotFound) {
		return identity.ErrRoleMismatch
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if ref.Role != want {
		return identity.ErrRoleMismatch
	}
	return nil
}
