package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
)

func ptr(s string) *string { return &s }

// fakeProfileRepo keeps profiles in a map and counts writes.
type fakeProfileRepo struct {
	profiles map[string]*identity.Profile
	upserts  int
}

func newFakeProfileRepo(profiles ...*identity.Profile) *fakeProfileRepo {
	f := &fakeProfileRepo{profiles: map[string]*identity.Profile{}}
	for _, p := range profiles {
		f.profiles[p.ID] = p
	}
	return f
}

func (f *fakeProfileRepo) Create(_ context.Context, p identity.Profile) error {
	if _, ok := f.profiles[p.ID]; ok {
		return identity.ErrDuplicate
	}
	f.profiles[p.ID] = &p
	return nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, p identity.Profile) error {
	f.upserts++
	if _, ok := f.profiles[p.ID]; !ok {
		f.profiles[p.ID] = &p
	}
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*identity.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, identity.ErrNotFound
}

func (f *fakeProfileRepo) List(_ context.Context) ([]identity.Profile, error) {
	out := make([]identity.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProfileRepo) UpdateDisplayName(_ context.Context, id, displayName string) error {
	p, ok := f.profiles[id]
	if !ok {
		return identity.ErrNotFound
	}
	p.DisplayName = displayName
	return nil
}

func (f *fakeProfileRepo) SetMentor(_ context.Context, clientID string, mentorID *string) error {
	p, ok := f.profiles[clientID]
	if !ok {
		return identity.ErrNotFound
	}
	if p.Role != identity.RoleClient {
		return identity.ErrRoleMismatch
	}
	p.MentorID = mentorID
	return nil
}

func (f *fakeProfileRepo) SetDirector(_ context.Context, mentorID string, directorID *string) error {
	p, ok := f.profiles[mentorID]
	if !ok {
		return identity.ErrNotFound
	}
	if p.Role != identity.RoleMentor {
		return identity.ErrRoleMismatch
	}
	p.DirectorID = directorID
	return nil
}

func (f *fakeProfileRepo) MentorOf(_ context.Context, id string) (*string, error) {
	if p, ok := f.profiles[id]; ok {
		return p.MentorID, nil
	}
	return nil, identity.ErrNotFound
}

// noMembership backs the authorizer for identity tests, where no conversation
// policies are exercised.
type noMembership struct{}

func (noMembership) IsMember(_ context.Context, _, _ string) (bool, error) { return false, nil }
func (noMembership) ListMemberIDs(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}
func (noMembership) ConversationRefs(_ context.Context, _ string) (string, string, *string, error) {
	return "", "", nil, identity.ErrNotFound
}
func (noMembership) MentorOf(_ context.Context, _ string) (*string, error) { return nil, nil }

func testAuthorizer() *authz.Authorizer {
	var m noMembership
	return authz.NewAuthorizer(m, m, m)
}

func TestRegisterProfile(t *testing.T) {
	repo := newFakeProfileRepo(
		&identity.Profile{ID: "mentor", Role: identity.RoleMentor},
	)
	uc := NewRegisterProfileUseCase(repo, testAuthorizer())

	p, err := uc.Execute(context.Background(), RegisterProfileInput{
		RequesterID: "alice",
		DisplayName: "Alice",
		Role:        identity.RoleClient,
		MentorID:    ptr("mentor"),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", p.ID)
	assert.Equal(t, identity.RoleClient, p.Role)
}

func TestRegisterProfileOncePerIdentity(t *testing.T) {
	repo := newFakeProfileRepo(&identity.Profile{ID: "alice", Role: identity.RoleClient})
	uc := NewRegisterProfileUseCase(repo, testAuthorizer())

	_, err := uc.Execute(context.Background(), RegisterProfileInput{
		RequesterID: "alice",
		DisplayName: "Alice again",
		Role:        identity.RoleClient,
	})
	assert.ErrorIs(t, err, identity.ErrDuplicate)
}

func TestRegisterProfileValidatesHierarchyRefs(t *testing.T) {
	repo := newFakeProfileRepo(
		&identity.Profile{ID: "not-a-mentor", Role: identity.RoleClient},
	)
	uc := NewRegisterProfileUseCase(repo, testAuthorizer())
	ctx := context.Background()

	_, err := uc.Execute(ctx, RegisterProfileInput{
		RequesterID: "alice",
		DisplayName: "Alice",
		Role:        identity.RoleClient,
		MentorID:    ptr("not-a-mentor"),
	})
	assert.ErrorIs(t, err, identity.ErrRoleMismatch)

	_, err = uc.Execute(ctx, RegisterProfileInput{
		RequesterID: "alice",
		DisplayName: "Alice",
		Role:        identity.RoleClient,
		MentorID:    ptr("ghost"),
	})
	assert.ErrorIs(t, err, identity.ErrRoleMismatch)

	_, err = uc.Execute(ctx, RegisterProfileInput{
		RequesterID: "alice",
		DisplayName: "Alice",
		Role:        identity.Role("superuser"),
	})
	assert.ErrorIs(t, err, identity.ErrInvalidRole)
}
