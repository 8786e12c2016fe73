package config

import (
	"path/filepath"
	"slices"
	"strings"
)

// Method is the intended mechanism for placing the bridge library next to a
// plugin file. It is a hint for future install actions, never ground truth
// for status reporting.
type Method string

const (
	MethodCopy    Method = "copy"
	MethodSymlink Method = "symlink"
)

// String returns the string representation of the method.
func (m Method) String() string {
	return string(m)
}

// ParseMethod converts a user-supplied string into a Method.
func ParseMethod(s string) (Method, bool) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodCopy:
		return MethodCopy, true
	case MethodSymlink:
		return MethodSymlink, true
	default:
		return "", false
	}
}

// Config is the persisted yabridgectl configuration document.
//
// PluginDirs is kept normalized (absolute, cleaned, no trailing separator),
// sorted and unique at all times, so duplicate insertion is reliably
// detected and iteration order is canonical.
type Config struct {
	PluginDirs   []string `toml:"plugin_dirs" validate:"dive,abspath"`
	YabridgeHome string   `toml:"yabridge_home,omitempty" validate:"omitempty,abspath"`
	Method       Method   `toml:"method" validate:"required,oneof=copy symlink"`
}

// Default returns the configuration used when no document exists yet.
func Default() *Config {
	return &Config{
		PluginDirs: []string{},
		Method:     MethodCopy,
	}
}

// NormalizePath converts path into the canonical form stored in PluginDirs.
func NormalizePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

// AddDirectory inserts a normalized path into PluginDirs, keeping the set
// sorted. It reports whether membership changed; inserting an
// already-present path is a no-op.
func (c *Config) AddDirectory(path string) (bool, error) {
	normalized, err := NormalizePath(path)
	if err != nil {
		return false, err
	}

	idx, found := slices.BinarySearch(c.PluginDirs, normalized)
	if found {
		return false, nil
	}

	c.PluginDirs = slices.Insert(c.PluginDirs, idx, normalized)
	return true, nil
}

// RemoveDirectory removes a normalized path from PluginDirs if present. It
// reports whether membership changed; removing an absent path is a defined
// no-op, not an error.
func (c *Config) RemoveDirectory(path string) (bool, error) {
	normalized, err := NormalizePath(path)
	if err != nil {
		return false, err
	}

	idx, found := slices.BinarySearch(c.PluginDirs, normalized)
	if !found {
		return false, nil
	}

	c.PluginDirs = slices.Delete(c.PluginDirs, idx, idx+1)
	return true, nil
}

// HasDirectory reports whether a path is registered, after normalization.
func (c *Config) HasDirectory(path string) bool {
	normalized, err := NormalizePath(path)
	if err != nil {
		return false
	}
	_, found := slices.BinarySearch(c.PluginDirs, normalized)
	return found
}

// Directories returns a copy of PluginDirs in canonical (sorted) order.
func (c *Config) Directories() []string {
	result := make([]string, len(c.PluginDirs))
	copy(result, c.PluginDirs)
	return result
}

// normalizeAll re-establishes the PluginDirs invariant after loading a
// document written by hand or by an older version.
func (c *Config) normalizeAll() error {
	normalized := make([]string, 0, len(c.PluginDirs))
	for _, dir := range c.PluginDirs {
		n, err := NormalizePath(dir)
		if err != nil {
			return err
		}
		normalized = append(normalized, n)
	}

	slices.Sort(normalized)
	c.PluginDirs = slices.Compact(normalized)
	return nil
}
