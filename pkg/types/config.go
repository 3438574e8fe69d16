package types

import (
	"errors"
	"fmt"
)

// Config holds backend selection and parameters for Store.Attach.
// DataDir is where the backend keeps its database; it is never implied.
// An empty Backend selects BackendSQLite.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// BackendSQLite is the only store backend.
const BackendSQLite = "sqlite"

// Config validation errors.
var (
	ErrBackendUnknown = errors.New("unknown backend")
	ErrDataDirEmpty   = errors.New("data directory must not be empty")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend != "" && c.Backend != BackendSQLite {
		return fmt.Errorf("%w %q", ErrBackendUnknown, c.Backend)
	}
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
