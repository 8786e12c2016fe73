// Package library resolves the location of the libyabridge.so artifact that
// gets installed next to every Windows plugin.
package library

import (
	"os"
	"path/filepath"

	"github.com/yabridge/yabridgectl/internal/config"
	pkgerrors "github.com/yabridge/yabridgectl/pkg/errors"
)

// LibraryName is the file name of the bridge shared library.
const LibraryName = "libyabridge.so"

// Locator finds the bridge library either in an explicitly configured
// location or by probing SearchPaths in order.
type Locator struct {
	// Home is the yabridge_home override. When set, the library must live
	// directly under it; the search paths are not consulted.
	Home string

	// SearchPaths are probed in order when no override is set. Kept as
	// data so tests can swap in their own locations.
	SearchPaths []string
}

// DefaultSearchPaths returns the well-known install locations, in priority
// order.
func DefaultSearchPaths() []string {
	paths := []string{"/usr/lib", "/usr/local/lib"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".local", "share", "yabridge"))
	}
	return paths
}

// NewLocator builds a Locator from the configuration.
func NewLocator(cfg *config.Config) *Locator {
	return &Locator{
		Home:        cfg.YabridgeHome,
		SearchPaths: DefaultSearchPaths(),
	}
}

// Resolve returns the path of the bridge library. An explicit override is
// honored literally: when Home is set and the library is not directly under
// it, resolution fails rather than falling back to probing.
func (l *Locator) Resolve() (string, error) {
	if l.Home != "" {
		candidate := filepath.Join(l.Home, LibraryName)
		if fileExists(candidate) {
			return candidate, nil
		}
		return "", pkgerrors.NewLibraryNotFoundError([]string{l.Home})
	}

	for _, dir := range l.SearchPaths {
		candidate := filepath.Join(dir, LibraryName)
		if fileExists(candidate) {
			return candidate, nil
		}
	}

	return "", pkgerrors.NewLibraryNotFoundError(l.SearchPaths)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
