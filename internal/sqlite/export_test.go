package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestBackend(t)

	_, err := src.Tag(ctx, "h1", []string{"a", "b"})
	require.NoError(t, err)
	_, err = src.Tag(ctx, "h2", []string{"b"})
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, src.Export(ctx, dir))
	for _, name := range []string{blobsFile, tagsFile, blobTagsFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "%s should be written", name)
	}

	dst := newTestBackend(t)
	// Pre-existing row with a different surrogate id must be reused.
	_, err = dst.Tag(ctx, "h2", []string{"b"})
	require.NoError(t, err)

	stats, err := dst.Import(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, ImportStats{Blobs: 2, Tags: 2, BlobTags: 3}, stats)

	want, err := src.Tagged(ctx, []string{"a", "b"})
	require.NoError(t, err)
	got, err := dst.Tagged(ctx, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = dst.Import(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, countRows(t, dst, "blobs"))
	assert.Equal(t, 2, countRows(t, dst, "tags"))
	assert.Equal(t, 3, countRows(t, dst, "blob_tags"), "second import must add no rows")
}

func TestImport_MissingFilesAreEmpty(t *testing.T) {
	b := newTestBackend(t)
	stats, err := b.Import(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ImportStats{}, stats)
}

func TestImport_DanglingReferenceRollsBack(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, blobsFile),
		[]byte(`{"blob_id":"b1","hash":"h1"}`+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, blobTagsFile),
		[]byte(`{"blob_tag_id":"x","blob_id":"b1","tag_id":"missing"}`+"\n"), 0o644))

	b := newTestBackend(t)
	_, err := b.Import(ctx, dir)
	assert.ErrorIs(t, err, types.ErrInvalidData)
	assert.Equal(t, 0, countRows(t, b, "blobs"), "failed import must leave no rows")
}

func TestImport_SkipsMalformedLines(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, tagsFile),
		[]byte("not json\n"+`{"tag_id":"t1","name":"good"}`+"\n"+`{"tag_id":"t2","name":""}`+"\n"), 0o644))

	b := newTestBackend(t)
	stats, err := b.Import(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Tags)
	assert.Equal(t, 1, countRows(t, b, "tags"))
}
