package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// relation is the capability shared by blobs, tags, and blob tags: insert a
// row keyed by the natural key, or look the row up by it. ref exposes the
// entity's identifier field so resolve can memoize into it.
type relation interface {
	ref() *string
	insert(ctx context.Context, tx *sql.Tx) (string, error)
	lookup(ctx context.Context, tx *sql.Tx) (string, error)
}

// resolve returns the surrogate identifier for r, creating its row if the
// natural key has never been seen. An identifier already held by the entity
// is returned without touching the store. A duplicate-key insert falls back
// to a lookup in the same transaction; every other error is returned.
//
// Not safe against concurrent writers on the same database.
func resolve(ctx context.Context, tx *sql.Tx, r relation) (string, error) {
	if id := *r.ref(); id != "" {
		return id, nil
	}

	id, err := r.insert(ctx, tx)
	if errors.Is(err, types.ErrDuplicateKey) {
		id, err = r.lookup(ctx, tx)
	}
	if err != nil {
		return "", err
	}

	*r.ref() = id
	return id, nil
}

// insertRow executes an INSERT and translates a natural-key uniqueness
// violation into ErrDuplicateKey.
func insertRow(ctx context.Context, tx *sql.Tx, table, query string, args ...any) error {
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("inserting into %s: %w", table, types.ErrDuplicateKey)
		}
		return fmt.Errorf("inserting into %s: %w", table, err)
	}
	return nil
}

// lookupID runs a single-column SELECT and returns ErrNotFound when no row
// matches.
func lookupID(ctx context.Context, tx *sql.Tx, table, query string, args ...any) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("looking up %s: %w", table, types.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("looking up %s: %w", table, err)
	}
	return id, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure on a natural key. The driver enables extended result codes, so a
// surrogate id collision reports SQLITE_CONSTRAINT_PRIMARYKEY and is not a
// duplicate.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(se.Error(), "UNIQUE constraint failed")
	}
	return false
}
