// Package locator implements content locators: services that hash a file's
// content and map content hashes back to the paths that currently hold them.
//
// Two kinds exist. Git asks git for blob hashes and for the tree listing of
// a revision. Dir walks a directory and hashes files itself with XXH3-128.
package locator

import (
	"github.com/pkg/errors"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// Locator kinds accepted by New.
const (
	KindGit = "git"
	KindDir = "dir"
)

// DefaultRev is the git revision listed when Config.Rev is empty.
const DefaultRev = "HEAD"

// ErrUnknownKind is returned by New for an unrecognized Config.Kind.
var ErrUnknownKind = errors.New("unknown locator kind")

// Config selects and parameterizes a locator.
type Config struct {
	Kind string // "git" (default) or "dir".
	Rev  string // Git revision to list; DefaultRev when empty.
	Root string // Working directory for git, walk root for dir; "." when empty.
}

// New builds the locator described by cfg.
func New(cfg Config) (types.Locator, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	switch cfg.Kind {
	case "", KindGit:
		return NewGit(root, cfg.Rev), nil
	case KindDir:
		return NewDir(root), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "locator %q", cfg.Kind)
	}
}

// filterPaths returns the paths of entries whose hash equals hash exactly.
func filterPaths(entries []types.Entry, hash string) []string {
	paths := []string{}
	for _, e := range entries {
		if e.Hash == hash {
			paths = append(paths, e.Path)
		}
	}
	return paths
}
