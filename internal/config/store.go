package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	pkgerrors "github.com/yabridge/yabridgectl/pkg/errors"
)

// Store persists the configuration document at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store for the given document path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user configuration document location,
// honoring XDG_CONFIG_HOME through os.UserConfigDir.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "yabridgectl", "config.toml"), nil
}

// Path returns the document path this store operates on.
func (s *Store) Path() string {
	return s.path
}

// Load reads the configuration document. A missing document yields the
// default configuration without implicitly writing it.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, pkgerrors.NewConfigIOError(s.path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, pkgerrors.NewConfigParseError(s.path, err)
	}

	if cfg.Method == "" {
		cfg.Method = MethodCopy
	}
	if cfg.PluginDirs == nil {
		cfg.PluginDirs = []string{}
	}

	// Hand-edited documents may carry unnormalized or duplicate paths.
	if err := cfg.normalizeAll(); err != nil {
		return nil, pkgerrors.NewConfigParseError(s.path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, pkgerrors.NewConfigParseError(s.path, err)
	}

	return &cfg, nil
}

// Save validates and persists the configuration atomically: the document is
// written to a temporary file and renamed into place, so a concurrent
// reader observes either the old or the new document in full.
func (s *Store) Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return pkgerrors.NewConfigParseError(s.path, err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return pkgerrors.NewConfigIOError(s.path, fmt.Errorf("failed to marshal config: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return pkgerrors.NewConfigIOError(s.path, err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return pkgerrors.NewConfigIOError(s.path, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return pkgerrors.NewConfigIOError(s.path, err)
	}

	return nil
}
