package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
)

func adminFixture() *fakeProfileRepo {
	return newFakeProfileRepo(
		&identity.Profile{ID: "admin", Role: identity.RoleTrainingDirector},
		&identity.Profile{ID: "client", Role: identity.RoleClient},
		&identity.Profile{ID: "mentor", Role: identity.RoleMentor},
	)
}

func TestAssignMentorRequiresAdmin(t *testing.T) {
	repo := adminFixture()
	uc := NewAssignMentorUseCase(repo, nil)
	ctx := context.Background()

	for _, requester := range []string{"client", "mentor", "ghost", ""} {
		err := uc.Execute(ctx, AssignMentorInput{
			RequesterID: requester,
			ClientID:    "client",
			MentorID:    ptr("mentor"),
		})
		assert.ErrorIs(t, err, identity.ErrAdminRequired, "requester %q", requester)
	}
	assert.Nil(t, repo.profiles["client"].MentorID)
}

func TestAssignAndClearMentor(t *testing.T) {
	repo := adminFixture()
	uc := NewAssignMentorUseCase(repo, nil)
	ctx := context.Background()

	require.NoError(t, uc.Execute(ctx, AssignMentorInput{
		RequesterID: "admin",
		ClientID:    "client",
		MentorID:    ptr("mentor"),
	}))
	require.NotNil(t, repo.profiles["client"].MentorID)
	assert.Equal(t, "mentor", *repo.profiles["client"].MentorID)

	require.NoError(t, uc.Execute(ctx, AssignMentorInput{
		RequesterID: "admin",
		ClientID:    "client",
		MentorID:    nil,
	}))
	assert.Nil(t, repo.profiles["client"].MentorID)
}

func TestAssignMentorRejectsNonClientTarget(t *testing.T) {
	repo := adminFixture()
	uc := NewAssignMentorUseCase(repo, nil)

	err := uc.Execute(context.Background(), AssignMentorInput{
		RequesterID: "admin",
		ClientID:    "mentor",
		MentorID:    ptr("mentor"),
	})
	assert.ErrorIs(t, err, identity.ErrRoleMismatch)
}

func TestAssignDirectorRequiresAdmin(t *testing.T) {
	repo := adminFixture()
	uc := NewAssignDirectorUseCase(repo, nil)

	err := uc.Execute(context.Background(), AssignDirectorInput{
		RequesterID: "mentor",
		MentorID:    "mentor",
		DirectorID:  ptr("admin"),
	})
	assert.ErrorIs(t, err, identity.ErrAdminRequired)

	require.NoError(t, uc.Execute(context.Background(), AssignDirectorInput{
		RequesterID: "admin",
		MentorID:    "mentor",
		DirectorID:  ptr("admin"),
	}))
	require.NotNil(t, repo.profiles["mentor"].DirectorID)
	assert.Equal(t, "admin", *repo.profiles["mentor"].DirectorID)
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewEnsureAdminUseCase(repo)
	ctx := context.Background()

	in := EnsureAdminInput{ID: "admin", DisplayName: "Program Director"}
	require.NoError(t, uc.Execute(ctx, in))
	require.NoError(t, uc.Execute(ctx, in))

	assert.Equal(t, 2, repo.upserts)
	require.Len(t, repo.profiles, 1)
	assert.Equal(t, identity.RoleTrainingDirector, repo.profiles["admin"].Role)
}
