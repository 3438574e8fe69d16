package locator

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// initRepo creates a git repository in a temp dir, commits files, and
// returns its path. The test is skipped when git is unavailable.
func initRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	writeTree(t, dir, files)

	git := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_CONFIG_GLOBAL=/dev/null",
			"GIT_CONFIG_NOSYSTEM=1",
		)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}
	git("init", "-q")
	git("add", ".")
	git("-c", "user.name=test", "-c", "user.email=test@example.com", "commit", "-q", "-m", "init")
	return dir
}

func TestGit(t *testing.T) {
	ctx := context.Background()
	dir := initRepo(t, map[string]string{
		"notes/a.md": "alpha\n",
		"b.md":       "beta\n",
		"c.md":       "alpha\n",
	})
	g := NewGit(dir, "")

	t.Run("hash-object matches the committed blob", func(t *testing.T) {
		hash, err := g.HashOf(ctx, "notes/a.md")
		require.NoError(t, err)
		assert.Len(t, hash, 40)

		paths, err := g.PathsForHash(ctx, hash)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"notes/a.md", "c.md"}, paths)
	})

	t.Run("list reports every blob", func(t *testing.T) {
		entries, err := g.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for _, e := range entries {
			assert.NoError(t, types.ValidateHash(e.Hash))
		}
	})

	t.Run("unknown revision is a command error", func(t *testing.T) {
		bad := NewGit(dir, "no-such-branch")
		_, err := bad.List(ctx)
		var ce *CommandError
		require.True(t, errors.As(err, &ce), "expected CommandError, got %v", err)
		assert.Equal(t, []string{"ls-tree", "-r", "-z", "no-such-branch"}, ce.Args)
		assert.NotEmpty(t, ce.Stderr)
	})

	t.Run("uncommitted content has no path", func(t *testing.T) {
		writeTree(t, dir, map[string]string{"new.md": "fresh\n"})
		hash, err := g.HashOf(ctx, filepath.Join(dir, "new.md"))
		require.NoError(t, err)
		paths, err := g.PathsForHash(ctx, hash)
		require.NoError(t, err)
		assert.Empty(t, paths)
	})
}

func TestParseLsTree(t *testing.T) {
	out := []byte("100644 blob aaaa\tREADME.md\x00" +
		"160000 commit bbbb\tvendor/lib\x00" +
		"100755 blob cccc\tdir/with space.sh\x00")

	entries, err := parseLsTree(out)
	require.NoError(t, err)
	assert.Equal(t, []types.Entry{
		{Hash: "aaaa", Path: "README.md"},
		{Hash: "cccc", Path: "dir/with space.sh"},
	}, entries)

	_, err = parseLsTree([]byte("garbage\x00"))
	assert.Error(t, err)

	entries, err = parseLsTree(nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
