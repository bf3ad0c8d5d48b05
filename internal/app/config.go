package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dietlog/dietlog/internal/command"
	"github.com/dietlog/dietlog/internal/store"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend   = "backend"
	cfgKeyDataDir   = "data_dir"
	cfgKeyUndoDepth = "undo_depth"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# dietlog configuration

# Storage backend: textfile or sqlite
backend: textfile

# Undo history depth
undo_depth: 20

# Data directory (optional; overridable by --data-dir flag)
# data_dir:
`

// Config is the resolved application configuration.
type Config struct {
	Backend   string
	DataDir   string
	UndoDepth int
}

// Validate checks backend and depth values.
func (c Config) Validate() error {
	switch c.Backend {
	case store.BackendTextFile, store.BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (expected %s or %s)", c.Backend, store.BackendTextFile, store.BackendSQLite)
	}
	if c.UndoDepth <= 0 {
		return fmt.Errorf("undo_depth must be positive, got %d", c.UndoDepth)
	}
	return nil
}

// LoadConfig reads config.yaml from the data directory, creating the
// directory and a default config file on first run. A missing config.yaml
// is not an error; defaults apply.
func LoadConfig(dataDir string) (Config, error) {
	if err := EnsureDataDir(dataDir); err != nil {
		return Config{}, err
	}
	if err := ensureDefaultConfigFile(dataDir); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, store.BackendTextFile)
	v.SetDefault(cfgKeyUndoDepth, command.DefaultUndoDepth)
	v.SetDefault(cfgKeyDataDir, dataDir)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dataDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Backend:   v.GetString(cfgKeyBackend),
		DataDir:   v.GetString(cfgKeyDataDir),
		UndoDepth: v.GetInt(cfgKeyUndoDepth),
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func ensureDefaultConfigFile(dataDir string) error {
	path := filepath.Join(dataDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
