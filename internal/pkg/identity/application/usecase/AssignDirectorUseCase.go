package usecase

import (
	"context"
	"errors"
	"fmt"

	cacheport "github.com/gregory413b/voicementor2/internal/infrastructure/cache/port"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/port"
)

// AssignDirectorInput points a mentor at a training director. Administrative
// operation. The repository re-materializes the director membership of every
// conversation owned by the mentor in the same transaction, so the snapshot
// tracks the pointer.
type AssignDirectorInput struct {
	RequesterID string
	MentorID    string
	DirectorID  *string
}

type AssignDirectorUseCase struct {
	Repo  repository.ProfileRepository
	Cache cacheport.Cache
}

func NewAssignDirectorUseCase(repo repository.ProfileRepository, cache cacheport.Cache) *AssignDirectorUseCase {
	return &AssignDirectorUseCase{Repo: repo, Cache: cache}
}

func (uc *AssignDirectorUseCase) Execute(ctx context.Context, in AssignDirectorInput) error {
	if in.MentorID == "" {
		return fmt.Errorf("mentor id is required")
	}
	if err := requireAdmin(ctx, uc.Repo, in.RequesterID); err != nil {
		return err
	}
	if err := uc.Repo.SetDirector(ctx, in.MentorID, in.DirectorID); err != nil {
		if errors.Is(err, identity.ErrNotFound) || errors.Is(err, identity.ErrRoleMismatch) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	InvalidateDirectory(ctx, uc.Cache)
	return nil
}
