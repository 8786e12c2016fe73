// Package installer classifies and manages the bridge library artifact that
// accompanies each discovered plugin file.
package installer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yabridge/yabridgectl/internal/config"
	pkgerrors "github.com/yabridge/yabridgectl/pkg/errors"
)

// CompanionSuffix is the extension of the installed bridge artifact.
const CompanionSuffix = ".so"

// ArtifactKind distinguishes how the companion artifact is present on disk.
type ArtifactKind int

const (
	KindRegular ArtifactKind = iota
	KindSymlink
)

// String returns the status word printed for the kind.
func (k ArtifactKind) String() string {
	switch k {
	case KindRegular:
		return "copy"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Artifact is the classification of a companion bridge library found next
// to a plugin file. Path is the artifact's own path; for symlinks this is
// the link itself, never its target.
type Artifact struct {
	Path string
	Kind ArtifactKind
}

// CompanionPath computes where the bridge artifact for a plugin file is
// expected: same directory, plugin stem, companion suffix.
func CompanionPath(pluginPath string) string {
	stem := strings.TrimSuffix(pluginPath, filepath.Ext(pluginPath))
	return stem + CompanionSuffix
}

// Classify inspects the expected companion path for a plugin file and
// reports what is there. A nil Artifact with a nil error means nothing is
// installed. The classification reflects the directory entry's own type:
// a symlink counts as a symlink even when its target dangles, because the
// configured installation method describes intent, not observed reality.
func Classify(pluginPath string) (*Artifact, error) {
	companion := CompanionPath(pluginPath)

	info, err := os.Lstat(companion)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, pkgerrors.NewInstallationCheckError(companion, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return &Artifact{Path: companion, Kind: KindSymlink}, nil
	}

	if info.Mode().IsRegular() {
		return &Artifact{Path: companion, Kind: KindRegular}, nil
	}

	return nil, pkgerrors.NewInstallationCheckError(companion, fmt.Errorf("unexpected file type %s", info.Mode().Type()))
}

// Install places the bridge library next to a plugin file using the given
// method, replacing whatever was there before.
func Install(pluginPath, libraryPath string, method config.Method) error {
	companion := CompanionPath(pluginPath)

	if err := removeExisting(companion); err != nil {
		return err
	}

	switch method {
	case config.MethodSymlink:
		if err := os.Symlink(libraryPath, companion); err != nil {
			return fmt.Errorf("failed to link %s -> %s: %w", companion, libraryPath, err)
		}
		return nil
	case config.MethodCopy:
		if err := copyFile(libraryPath, companion); err != nil {
			return fmt.Errorf("failed to copy %s to %s: %w", libraryPath, companion, err)
		}
		return nil
	default:
		return fmt.Errorf("unknown installation method %q", method)
	}
}

func removeExisting(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return os.Remove(path)
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}

	return dstFile.Sync()
}
