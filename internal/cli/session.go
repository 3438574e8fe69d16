package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/blobtag/internal/locator"
	"github.com/mesh-intelligence/blobtag/internal/paths"
	"github.com/mesh-intelligence/blobtag/internal/sqlite"
	"github.com/mesh-intelligence/blobtag/internal/tagging"
	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// session is an attached store plus the engine built over it.
type session struct {
	store  *sqlite.Backend
	engine *tagging.Engine
}

// Close detaches the store.
func (s *session) Close() error {
	return s.store.Detach()
}

// openSession resolves configuration, attaches the SQLite store, and builds
// the configured locator. Flags take precedence over config.yaml values.
func openSession(cmd *cobra.Command, o *options) (*session, error) {
	v, err := resolveConfig(cmd, o)
	if err != nil {
		return nil, err
	}

	dataDir, err := paths.ResolveDataDir(o.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	loc, err := locator.New(locator.Config{
		Kind: v.GetString(cfgKeyLocator),
		Rev:  v.GetString(cfgKeyRev),
		Root: v.GetString(cfgKeyRoot),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrUsage, err)
	}
	if o.verbose {
		loc = locator.NewLogging(loc, log.New(cmd.ErrOrStderr(), "blobtag: ", log.LstdFlags))
	}

	store := sqlite.NewBackend()
	if err := store.Attach(types.Config{Backend: v.GetString(cfgKeyBackend), DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return &session{store: store, engine: tagging.New(store, loc)}, nil
}

// resolveConfig loads config.yaml and binds the locator flags over it.
func resolveConfig(cmd *cobra.Command, o *options) (*viper.Viper, error) {
	configDir, err := paths.ResolveConfigDir(o.configDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return nil, err
	}

	pf := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		cfgKeyLocator: "locator",
		cfgKeyRev:     "rev",
		cfgKeyRoot:    "root",
	} {
		if err := v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return v, nil
}

// withSession opens a session, runs fn under the operation context, and
// detaches afterwards.
func withSession(cmd *cobra.Command, o *options, fn func(s *session) error) (err error) {
	s, err := openSession(cmd, o)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(s)
}
