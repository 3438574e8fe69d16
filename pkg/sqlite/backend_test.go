package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/blobtag/pkg/sqlite"
	"github.com/mesh-intelligence/blobtag/pkg/types"
)

func TestNewBackend(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewBackend()

	_, err := store.TagsOf(ctx, "abc")
	assert.ErrorIs(t, err, types.ErrDetached)

	require.NoError(t, store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	defer store.Detach()

	ids, err := store.Tag(ctx, "abc", []string{"x", "y"})
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	names, err := store.TagsOf(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, names)

	tagged, err := store.Tagged(ctx, []string{"y"})
	require.NoError(t, err)
	assert.Equal(t, []types.TaggedBlob{{Hash: "abc", Tags: []string{"x", "y"}}}, tagged)
}
