package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/blobtag/internal/locator"
	"github.com/mesh-intelligence/blobtag/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"
	cfgKeyLocator = "locator"
	cfgKeyRev     = "rev"
	cfgKeyRoot    = "root"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# blobtag configuration

# Backend selection
backend: sqlite

# Data directory holding tag.db (optional; overridable by --data-dir)
# data_dir:

# Content locator: git (hash-object / ls-tree) or dir (walk and hash files)
locator: git

# Git revision whose tree answers queries
rev: HEAD

# Directory the locator runs in
# root: .
`

// loadConfig reads config.yaml from the config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyLocator, locator.KindGit)
	v.SetDefault(cfgKeyRev, locator.DefaultRev)
	v.SetDefault(cfgKeyRoot, ".")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
