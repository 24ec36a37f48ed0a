package identity

import (
	"errors"
	"strings"
	"time"
)

// Role places a profile in the coaching hierarchy.
type Role string

const (
	RoleClient           Role = "client"
	RoleMentor           Role = "mentor"
	RoleTrainingDirector Role = "training_director"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleMentor, RoleTrainingDirector:
		return true
	}
	return false
}

var (
	ErrNotFound      = errors.New("identity: profile not found")
	ErrDuplicate     = errors.New("identity: profile already exists")
	ErrInvalidRole   = errors.New("identity: invalid role")
	ErrRoleMismatch  = errors.New("identity: referenced profile has the wrong role")
	ErrEmptyName     = errors.New("identity: display name is required")
	ErrAdminRequired = errors.New("identity: training director role required")
)

// Profile is the domain record for an authenticated principal. The ID is
// shared 1:1 with the external identity provider. MentorID links a client to
// its mentor; DirectorID links a mentor to its training director.
type Profile struct {
	ID          string
	DisplayName string
	Role        Role
	MentorID    *string
	DirectorID  *string
	CreatedAt   time.Time
}

// NewProfile validates and normalizes a profile at registration time.
// Cross-profile role invariants (a client's mentor must be a mentor, a
// mentor's director must be a training director) are checked against the
// store by the registration use case.
func NewProfile(id, displayName string, role Role, mentorID, directorID *string) (*Profile, error) {
	if id == "" {
		return nil, errors.New("identity: id is required")
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrEmptyName
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	// Hierarchy pointers only make sense downward.
	if role == RoleTrainingDirector && (mentorID != nil || directorID != nil) {
		return nil, ErrRoleMismatch
	}
	if role == RoleMentor && mentorID != nil {
		return nil, ErrRoleMismatch
	}
	if role == RoleClient && directorID != nil {
		return nil, ErrRoleMismatch
	}
	return &Profile{
		ID:          id,
		DisplayName: displayName,
		Role:        role,
		MentorID:    mentorID,
		DirectorID:  directorID,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
