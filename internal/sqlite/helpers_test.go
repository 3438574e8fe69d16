package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// newTestBackend attaches a backend in a fresh temp directory and detaches
// it when the test ends.
func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { b.Detach() })
	return b
}

// countRows returns the number of rows in table.
func countRows(t *testing.T, b *Backend, table string) int {
	t.Helper()
	var n int
	err := b.View(context.Background(), func(tx *sql.Tx) error {
		return tx.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	})
	require.NoError(t, err)
	return n
}
