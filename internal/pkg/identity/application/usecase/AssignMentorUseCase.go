package usecase

import (
	"context"
	"errors"
	"fmt"

	cacheport "github.com/gregory413b/voicementor2/internal/infrastructure/cache/port"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/port"
)

// AssignMentorInput points a client at a mentor. Administrative operation:
// only a training director may issue it.
type AssignMentorInput struct {
	RequesterID string
	ClientID    string
	MentorID    *string
}

type AssignMentorUseCase struct {
	Repo  repository.ProfileRepository
	Cache cacheport.Cache
}

func NewAssignMentorUseCase(repo repository.ProfileRepository, cache cacheport.Cache) *AssignMentorUseCase {
	return &AssignMentorUseCase{Repo: repo, Cache: cache}
}

func (uc *AssignMentorUseCase) Execute(ctx context.Context, in AssignMentorInput) error {
	if in.ClientID == "" {
		return fmt.Errorf("client id is required")
	}
	if err := requireAdmin(ctx, uc.Repo, in.RequesterID); err != nil {
		return err
	}
	if err := uc.Repo.SetMentor(ctx, in.ClientID, in.MentorID); err != nil {
		if errors.Is(err, identity.ErrNotFound) || errors.Is(err, identity.ErrRoleMismatch) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	InvalidateDirectory(ctx, uc.Cache)
	return nil
}

func requireAdmin(ctx context.Context, repo repository.ProfileRepository, requesterID string) error {
	if requesterID == "" {
		return identity.ErrAdminRequired
	}
	p, err := repo.GetByID(ctx, requesterID)
	if errors.Is(err, identity.ErrNotFound) {
		return identity.ErrAdminRequired
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if p.Role != identity.RoleTrainingDirector {
		return identity.ErrAdminRequired
	}
	return nil
}
