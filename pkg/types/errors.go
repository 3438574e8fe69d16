package types

import "errors"

// Usage errors. Reported before any I/O takes place.
var (
	ErrUsage = errors.New("usage error")
)

// Entity errors.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrInvalidData = errors.New("invalid entity data")
	ErrInvalidHash = errors.New("invalid content hash")
	ErrInvalidName = errors.New("invalid tag name")
)

// ErrDuplicateKey signals that an insert violated a natural-key uniqueness
// constraint. Resolvers turn it into a lookup; it is never returned to
// callers of Store.
var ErrDuplicateKey = errors.New("duplicate key")
