package locator

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

var _ types.Locator = (*Git)(nil)

// Git locates content through the git command line: blob hashes come from
// `git hash-object` and the listing from `git ls-tree -r` of a revision.
type Git struct {
	Dir string // Directory git runs in.
	Rev string // Revision to list.
	Bin string // git executable.
}

// NewGit returns a Git locator running in dir and listing rev.
func NewGit(dir, rev string) *Git {
	if rev == "" {
		rev = DefaultRev
	}
	return &Git{Dir: dir, Rev: rev, Bin: "git"}
}

// CommandError reports a failed git invocation with its stderr output.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// HashOf returns the git blob hash of the file at path.
func (g *Git) HashOf(ctx context.Context, path string) (string, error) {
	out, err := g.run(ctx, "hash-object", "--", path)
	if err != nil {
		return "", errors.Wrapf(err, "hashing %s", path)
	}
	hash := strings.TrimSpace(string(out))
	if err := types.ValidateHash(hash); err != nil {
		return "", errors.Wrapf(err, "hashing %s: unexpected output %q", path, out)
	}
	return hash, nil
}

// PathsForHash returns the paths in the listed revision whose blob hash is
// hash.
func (g *Git) PathsForHash(ctx context.Context, hash string) ([]string, error) {
	entries, err := g.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterPaths(entries, hash), nil
}

// List returns every blob in the listed revision, in tree order.
func (g *Git) List(ctx context.Context) ([]types.Entry, error) {
	out, err := g.run(ctx, "ls-tree", "-r", "-z", g.Rev)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", g.Rev)
	}
	entries, err := parseLsTree(out)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", g.Rev)
	}
	return entries, nil
}

// parseLsTree parses NUL-terminated `git ls-tree -z` records of the form
// "<mode> SP <type> SP <object> TAB <path>". Non-blob objects (submodule
// commits) are skipped.
func parseLsTree(out []byte) ([]types.Entry, error) {
	entries := []types.Entry{}
	for _, rec := range bytes.Split(out, []byte{0}) {
		if len(rec) == 0 {
			continue
		}
		meta, path, ok := bytes.Cut(rec, []byte{'\t'})
		if !ok {
			return nil, errors.Errorf("malformed ls-tree record %q", rec)
		}
		fields := strings.Fields(string(meta))
		if len(fields) != 3 {
			return nil, errors.Errorf("malformed ls-tree record %q", rec)
		}
		if fields[1] != "blob" {
			continue
		}
		entries = append(entries, types.Entry{Hash: fields[2], Path: string(path)})
	}
	return entries, nil
}

func (g *Git) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, g.Bin, args...)
	cmd.Dir = g.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.Bytes(), nil
}
