// Package sqlite provides the public API for the SQLite blobtag store.
// It exposes the factory function while keeping the schema and relation
// code internal.
package sqlite

import (
	"github.com/mesh-intelligence/blobtag/internal/sqlite"
	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// NewBackend creates a new SQLite store.
// The store is not attached; call Attach with a Config to open it.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: "/home/me/.local/share/blobtag",
//	})
//	defer store.Detach()
//	ids, err := store.Tag(ctx, hash, []string{"draft"})
func NewBackend() types.Store {
	return sqlite.NewBackend()
}
