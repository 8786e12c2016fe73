// Package scanner discovers Windows plugin modules under a registered
// directory.
package scanner

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/yabridge/yabridgectl/pkg/errors"
)

// PluginSuffix is the file name extension identifying Windows plugin
// modules, matched case-insensitively.
const PluginSuffix = ".dll"

// Scan returns a lazy sequence of plugin file paths under root. The root is
// checked upfront: a missing or unopenable directory yields a typed error
// instead of an empty sequence, since silent emptiness would be
// indistinguishable from "no plugins installed".
//
// The walk never follows directory symlinks, so trees containing symlink
// cycles terminate without duplicates. Subdirectories that cannot be read
// mid-walk are skipped. Entries are produced in lexical path order; a
// consumed sequence is not restartable, call Scan again to re-walk.
func Scan(root string) (iter.Seq[string], error) {
	info, err := os.Stat(root)
	switch {
	case err == nil && !info.IsDir():
		return nil, pkgerrors.NewDirectoryNotFoundError(root)
	case os.IsNotExist(err):
		return nil, pkgerrors.NewDirectoryNotFoundError(root)
	case errors.Is(err, fs.ErrPermission):
		return nil, pkgerrors.NewDirectoryPermissionError(root, err)
	case err != nil:
		return nil, pkgerrors.NewDirectoryPermissionError(root, err)
	}

	// Opening the directory catches the case where the parent is
	// traversable but the directory itself is not readable.
	handle, err := os.Open(root)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, pkgerrors.NewDirectoryPermissionError(root, err)
		}
		return nil, pkgerrors.NewDirectoryNotFoundError(root)
	}
	handle.Close()

	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subdirectory; its contents are skipped.
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !strings.EqualFold(filepath.Ext(d.Name()), PluginSuffix) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}, nil
}

// Collect drains a scan sequence into a slice.
func Collect(seq iter.Seq[string]) []string {
	var result []string
	for path := range seq {
		result = append(result, path)
	}
	return result
}
