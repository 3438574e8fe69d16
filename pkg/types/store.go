package types

import (
	"context"
	"errors"
)

// Store is the identity store for blobs, tags, and their associations.
// Callers attach to a backend, run operations, and detach when done.
// Every operation runs in a single transaction.
type Store interface {
	// Attach opens the backend described by config. Creates the DataDir if
	// it does not exist. Returns ErrAlreadyAttached if already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent.
	Detach() error

	// Tag links every name to the blob with the given hash, creating the
	// blob, tags, and associations as needed. It returns one association ID
	// per name, in input order. Tagging an already-linked pair returns the
	// existing association ID. An empty names slice returns ErrUsage
	// without touching the store.
	Tag(ctx context.Context, hash string, names []string) ([]string, error)

	// TagsOf returns the names of every tag linked to the blob with the
	// given hash, sorted. An unknown hash yields an empty slice.
	TagsOf(ctx context.Context, hash string) ([]string, error)

	// Tagged returns every blob that carries at least one of the named tags,
	// each with its complete tag set. Unknown names are ignored.
	Tagged(ctx context.Context, names []string) ([]TaggedBlob, error)
}

// Store lifecycle errors.
var (
	ErrDetached        = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
