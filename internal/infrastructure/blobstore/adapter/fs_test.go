package adapter

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory413b/voicementor2/internal/infrastructure/blobstore/port"
)

func TestPutOpenDeleteRoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	n, err := store.Put(ctx, "conv-1/a.m4a", strings.NewReader("audio bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("audio bytes")), n)

	rc, err := store.Open(ctx, "conv-1/a.m4a")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "audio bytes", string(data))

	require.NoError(t, store.Delete(ctx, "conv-1/a.m4a"))
	_, err = store.Open(ctx, "conv-1/a.m4a")
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "conv-1/never-existed.m4a"))
}

func TestRejectsUnsafeKeys(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{
		"",
		"noslash",
		"/rooted/key.m4a",
		"../escape.m4a",
		"conv-1/../../etc/passwd",
		"a/b/c",
		"conv-1/",
		"/conv-1",
	} {
		_, err := store.Put(ctx, key, strings.NewReader("x"))
		assert.Error(t, err, "key %q", key)
	}
}
