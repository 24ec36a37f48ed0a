package usecase

import (
	"context"
	"fmt"

	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/port"
)

// EnsureAdminInput provisions the configured training-director profile.
type EnsureAdminInput struct {
	ID          string
	DisplayName string
}

// EnsureAdminUseCase is the single idempotent bootstrap operation. It is
// invoked only by the provisioning entrypoint, never by the serving path, and
// running it repeatedly is safe.
type EnsureAdminUseCase struct {
	Repo repository.ProfileRepository
}

func NewEnsureAdminUseCase(repo repository.ProfileRepository) *EnsureAdminUseCase {
	return &EnsureAdminUseCase{Repo: repo}
}

func (uc *EnsureAdminUseCase) Execute(ctx context.Context, in EnsureAdminInput) error {
	p, err := identity.NewProfile(in.ID, in.DisplayName, identity.RoleTrainingDirector, nil, nil)
	if err != nil {
		return err
	}
	if err := uc.Repo.Upsert(ctx, *p); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
