package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
)

func bookmarkFixture() (*fakeLibraryRepo, *authz.Authorizer) {
	access := &fakeMembership{members: map[string][]string{"conv-1": {"alice", "mentor"}}}
	repo := &fakeLibraryRepo{
		bookmarks: map[string]*library.Bookmark{
			"bm-1": {ID: "bm-1", MessageID: "msg-1", OwnerID: "alice", OffsetSeconds: 42},
		},
	}
	return repo, authz.NewAuthorizer(access, access, access)
}

func TestDeleteBookmarkByOwner(t *testing.T) {
	repo, auth := bookmarkFixture()
	uc := NewDeleteBookmarkUseCase(repo, auth)

	err := uc.Execute(context.Background(), DeleteBookmarkInput{RequesterID: "alice", BookmarkID: "bm-1"})
	require.NoError(t, err)
	assert.Empty(t, repo.bookmarks)
}

func TestDeleteBookmarkForeignAndMissingLookAlike(t *testing.T) {
	repo, auth := bookmarkFixture()
	uc := NewDeleteBookmarkUseCase(repo, auth)
	ctx := context.Background()

	errForeign := uc.Execute(ctx, DeleteBookmarkInput{RequesterID: "mentor", BookmarkID: "bm-1"})
	errMissing := uc.Execute(ctx, DeleteBookmarkInput{RequesterID: "mentor", BookmarkID: "bm-404"})

	assert.ErrorIs(t, errForeign, authz.ErrDenied)
	assert.ErrorIs(t, errMissing, authz.ErrDenied)
	assert.Equal(t, errForeign.Error(), errMissing.Error())
	require.Len(t, repo.bookmarks, 1)
}

func TestCreateBookmarkValidation(t *testing.T) {
	repo, auth := bookmarkFixture()
	uc := NewCreateBookmarkUseCase(repo, auth)
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateBookmarkInput{RequesterID: "alice", MessageID: "msg-1", OffsetSeconds: -1})
	assert.ErrorIs(t, err, library.ErrBadOffset)

	_, err = uc.Execute(ctx, CreateBookmarkInput{RequesterID: "alice", OffsetSeconds: 3})
	assert.ErrorIs(t, err, library.ErrMissingRefs)

	b, err := uc.Execute(ctx, CreateBookmarkInput{RequesterID: "alice", MessageID: "msg-1", OffsetSeconds: 3, Label: "  key point  "})
	require.NoError(t, err)
	assert.Equal(t, "alice", b.OwnerID)
	assert.Equal(t, "key point", b.Label)
}
