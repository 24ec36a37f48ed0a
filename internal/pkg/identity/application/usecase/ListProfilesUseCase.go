package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cacheport "github.com/gregory413b/voicementor2/internal/infrastructure/cache/port"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
	repository "github.com/gregory413b/voicementor2/internal/pkg/identity/persistence/repository/port"
)

// directoryCacheKey holds the serialized profile directory. Profiles are
// readable by every authenticated principal, so serving them from cache can
// never widen access.
const directoryCacheKey = "profiles:directory"

// ListProfilesInput lists the profile directory.
type ListProfilesInput struct {
	RequesterID string
}

// ListProfilesUseCase serves the profile directory through a short-TTL cache.
type ListProfilesUseCase struct {
	Repo  repository.ProfileRepository
	Auth  *authz.Authorizer
	Cache cacheport.Cache
	TTL   time.Duration
}

func NewListProfilesUseCase(repo repository.ProfileRepository, auth *authz.Authorizer, cache cacheport.Cache, ttl time.Duration) *ListProfilesUseCase {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ListProfilesUseCase{Repo: repo, Auth: auth, Cache: cache, TTL: ttl}
}

func (uc *ListProfilesUseCase) Execute(ctx context.Context, in ListProfilesInput) ([]identity.Profile, error) {
	if err := uc.Auth.Authorize(ctx, in.RequesterID, authz.ProfileRef{}, authz.ActionRead); err != nil {
		return nil, err
	}

	if uc.Cache != nil {
		if cached, err := uc.Cache.Get(ctx, directoryCacheKey); err == nil {
			var profiles []identity.Profile
			if json.Unmarshal([]byte(cached), &profiles) == nil {
				return profiles, nil
			}
		}
	}

	profiles, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if uc.Cache != nil {
		if b, err := json.Marshal(profiles); err == nil {
			_ = uc.Cache.Set(ctx, directoryCacheKey, string(b), uc.TTL)
		}
	}
	return profiles, nil
}

// InvalidateDirectory drops the cached directory after any profile mutation.
func InvalidateDirectory(ctx context.Context, cache cacheport.Cache) {
	if cache != nil {
		_, _ = cache.Del(ctx, directoryCacheKey)
	}
}
