package types

import "context"

// Entry is one (hash, path) pair reported by a Locator listing.
type Entry struct {
	Hash string
	Path string
}

// Locator maps file content to hashes and hashes back to the paths that
// currently hold them.
type Locator interface {
	// HashOf computes the content hash of the file at path.
	HashOf(ctx context.Context, path string) (string, error)

	// PathsForHash returns the paths whose current content has the given
	// hash. The result may be empty.
	PathsForHash(ctx context.Context, hash string) ([]string, error)

	// List returns every (hash, path) pair in the current tree, in listing
	// order.
	List(ctx context.Context) ([]Entry, error)
}
