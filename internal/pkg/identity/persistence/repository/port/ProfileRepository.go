package repository

import (
	"context"

	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
)

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	// Create inserts a profile exactly once; a second insert for the same id
	// returns identity.ErrDuplicate.
	Create(ctx context.Context, p identity.Profile) error

	// Upsert inserts the profile if absent and is a no-op otherwise.
	// Used only by the provisioning entrypoint.
	Upsert(ctx context.Context, p identity.Profile) error

	GetByID(ctx context.Context, id string) (*identity.Profile, error)
	List(ctx context.Context) ([]identity.Profile, error)

	UpdateDisplayName(ctx context.Context, id, displayName string) error

	// SetMentor points a client at a mentor after verifying both roles.
	SetMentor(ctx context.Context, clientID string, mentorID *string) error

	// SetDirector points a mentor at a training director and, in the same
	// transaction, re-materializes the director membership rows of every
	// conversation owned by that mentor.
	SetDirector(ctx context.Context, mentorID string, directorID *string) error

	// MentorOf returns the mentor reference of a profile (nil when unset).
	MentorOf(ctx context.Context, profileID string) (*string, error)
}
