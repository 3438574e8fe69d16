package locator

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// staticLocator serves a fixed listing.
type staticLocator struct {
	entries []types.Entry
	err     error
}

func (s staticLocator) HashOf(ctx context.Context, path string) (string, error) {
	for _, e := range s.entries {
		if e.Path == path {
			return e.Hash, nil
		}
	}
	return "", errors.New("no such file")
}

func (s staticLocator) PathsForHash(ctx context.Context, hash string) ([]string, error) {
	return filterPaths(s.entries, hash), s.err
}

func (s staticLocator) List(ctx context.Context) ([]types.Entry, error) {
	return s.entries, s.err
}

func TestLogging(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	l := NewLogging(staticLocator{entries: []types.Entry{{Hash: "h1", Path: "a"}}},
		log.New(&buf, "", 0))

	hash, err := l.HashOf(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "h1", hash)

	_, err = l.HashOf(ctx, "missing")
	assert.Error(t, err)

	paths, err := l.PathsForHash(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, paths)

	entries, err := l.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.Equal(t, "HashOf a = h1\n"+
		"ERROR HashOf missing: no such file\n"+
		"PathsForHash h1: 1 paths\n"+
		"List: 1 entries\n", buf.String())
}
