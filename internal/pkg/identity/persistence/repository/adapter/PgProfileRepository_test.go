package adapter

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory413b/voicementor2/internal/infrastructure/database"
	conversation "github.com/gregory413b/voicementor2/internal/pkg/conversation/domain"
	convadapter "github.com/gregory413b/voicementor2/internal/pkg/conversation/persistence/repository/adapter"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
)

// SetDirector rewrites the membership snapshot inside one SQL transaction, so
// it can only be covered against a real database. Set TEST_DATABASE_URL to run
// these; they are skipped otherwise.

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, database.Migrate(ctx, dsn, 10*time.Second))

	pool, err := database.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedProfile(t *testing.T, repo *PgProfileRepository, role identity.Role, mentorID, directorID *string) string {
	t.Helper()
	id := uuid.NewString()
	require.NoError(t, repo.Create(context.Background(), identity.Profile{
		ID:          id,
		DisplayName: string(role) + " " + id[:8],
		Role:        role,
		MentorID:    mentorID,
		DirectorID:  directorID,
	}))
	return id
}

func seedConversation(t *testing.T, convs *convadapter.PgConversationRepository, clientID, mentorID, directorID string) string {
	t.Helper()
	created, err := convs.Create(context.Background(),
		conversation.Conversation{ClientID: clientID, MentorID: mentorID},
		[]conversation.Participant{
			{ProfileID: clientID, Role: identity.RoleClient},
			{ProfileID: mentorID, Role: identity.RoleMentor},
			{ProfileID: directorID, Role: identity.RoleTrainingDirector},
		})
	require.NoError(t, err)
	return created.ID
}

func contains(ids []string, want string) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}

func TestSetDirectorRewritesMembershipSnapshot(t *testing.T) {
	pool := testPool(t)
	repo := NewPgProfileRepository(pool)
	convs := convadapter.NewPgConversationRepository(pool)
	ctx := context.Background()

	oldDirector := seedProfile(t, repo, identity.RoleTrainingDirector, nil, nil)
	newDirector := seedProfile(t, repo, identity.RoleTrainingDirector, nil, nil)
	mentor := seedProfile(t, repo, identity.RoleMentor, nil, &oldDirector)
	clientA := seedProfile(t, repo, identity.RoleClient, &mentor, nil)
	clientB := seedProfile(t, repo, identity.RoleClient, &mentor, nil)

	// Every conversation of the mentor must follow the pointer change.
	convA := seedConversation(t, convs, clientA, mentor, oldDirector)
	convB := seedConversation(t, convs, clientB, mentor, oldDirector)

	require.NoError(t, repo.SetDirector(ctx, mentor, &newDirector))

	p, err := repo.GetByID(ctx, mentor)
	require.NoError(t, err)
	require.NotNil(t, p.DirectorID)
	assert.Equal(t, newDirector, *p.DirectorID)

	for _, convID := range []string{convA, convB} {
		ids, err := convs.ListMemberIDs(ctx, convID)
		require.NoError(t, err)
		assert.True(t, contains(ids, newDirector), "conversation %s missing new director", convID)
		assert.False(t, contains(ids, oldDirector), "conversation %s kept old director", convID)
		assert.True(t, contains(ids, mentor))
	}
}

func TestSetDirectorClearedRemovesMembership(t *testing.T) {
	pool := testPool(t)
	repo := NewPgProfileRepository(pool)
	convs := convadapter.NewPgConversationRepository(pool)
	ctx := context.Background()

	director := seedProfile(t, repo, identity.RoleTrainingDirector, nil, nil)
	mentor := seedProfile(t, repo, identity.RoleMentor, nil, &director)
	client := seedProfile(t, repo, identity.RoleClient, &mentor, nil)
	convID := seedConversation(t, convs, client, mentor, director)

	require.NoError(t, repo.SetDirector(ctx, mentor, nil))

	p, err := repo.GetByID(ctx, mentor)
	require.NoError(t, err)
	assert.Nil(t, p.DirectorID)

	members, err := convs.ListParticipants(ctx, convID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	for _, m := range members {
		assert.NotEqual(t, identity.RoleTrainingDirector, m.Role)
	}
}

func TestSetDirectorValidatesTarget(t *testing.T) {
	pool := testPool(t)
	repo := NewPgProfileRepository(pool)
	ctx := context.Background()

	director := seedProfile(t, repo, identity.RoleTrainingDirector, nil, nil)
	mentor := seedProfile(t, repo, identity.RoleMentor, nil, nil)
	client := seedProfile(t, repo, identity.RoleClient, &mentor, nil)

	// Only mentors take a director pointer.
	err := repo.SetDirector(ctx, client, &director)
	assert.ErrorIs(t, err, identity.ErrNotFound)

	// The referenced director must actually be a training director.
	err = repo.SetDirector(ctx, mentor, &client)
	assert.ErrorIs(t, err, identity.ErrRoleMismatch)

	err = repo.SetDirector(ctx, uuid.NewString(), &director)
	assert.ErrorIs(t, err, identity.ErrNotFound)
}
