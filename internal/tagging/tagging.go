// Package tagging combines the identity store with a content locator: it
// tags files by their content hash and answers reverse queries by matching
// stored hashes against the locator's current listing.
package tagging

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// Engine runs tag and query operations against a store and a locator.
type Engine struct {
	Store   types.Store
	Locator types.Locator
}

// New returns an Engine over store and loc.
func New(store types.Store, loc types.Locator) *Engine {
	return &Engine{Store: store, Locator: loc}
}

// Tag hashes the file at path and links each name to that content.
// It returns the association IDs in input order. Missing names are a usage
// error reported before the file is read.
func (e *Engine) Tag(ctx context.Context, path string, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("tag %s: tag names required: %w", path, types.ErrUsage)
	}
	hash, err := e.hashOf(ctx, path)
	if err != nil {
		return nil, err
	}
	return e.Store.Tag(ctx, hash, names)
}

// TagsOfFile returns the tags of the file's current content.
func (e *Engine) TagsOfFile(ctx context.Context, path string) ([]string, error) {
	hash, err := e.hashOf(ctx, path)
	if err != nil {
		return nil, err
	}
	return e.Store.TagsOf(ctx, hash)
}

// hashOf hashes path as named from the working directory, whatever
// directory the locator itself runs in.
func (e *Engine) hashOf(ctx context.Context, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return e.Locator.HashOf(ctx, abs)
}

// Query finds every file whose current content carries at least one of the
// named tags. Each result holds the content's complete tag set. Results
// follow the locator's listing order; content with no current path is
// skipped, and content found at several paths yields one result per path.
func (e *Engine) Query(ctx context.Context, names []string) ([]types.FileTags, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("query: tag names required: %w", types.ErrUsage)
	}

	tagged, err := e.Store.Tagged(ctx, names)
	if err != nil {
		return nil, err
	}
	results := []types.FileTags{}
	if len(tagged) == 0 {
		return results, nil
	}

	byHash := make(map[string][]string, len(tagged))
	for _, tb := range tagged {
		byHash[tb.Hash] = tb.Tags
	}

	entries, err := e.Locator.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		tags, ok := byHash[entry.Hash]
		if !ok {
			continue
		}
		results = append(results, types.FileTags{Path: entry.Path, Hash: entry.Hash, Tags: tags})
	}
	return results, nil
}

// Render writes one "path: tag1, tag2" line per result.
func Render(w io.Writer, results []types.FileTags) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
