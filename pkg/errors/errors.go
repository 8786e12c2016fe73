package errors

import (
	"fmt"
	"strings"
)

// ConfigIOError reports that the configuration document could not be read
// or written.
type ConfigIOError struct {
	Path string
	Err  error
}

// NewConfigIOError constructs a ConfigIOError.
func NewConfigIOError(path string, err error) error {
	return &ConfigIOError{Path: path, Err: err}
}

func (e *ConfigIOError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("config I/O error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ConfigIOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigParseError reports a malformed or invalid configuration document.
type ConfigParseError struct {
	Path string
	Err  error
}

// NewConfigParseError constructs a ConfigParseError.
func NewConfigParseError(path string, err error) error {
	return &ConfigParseError{Path: path, Err: err}
}

func (e *ConfigParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("config parse error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ConfigParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DirectoryNotFoundError reports a registered plugin directory that no
// longer exists on disk.
type DirectoryNotFoundError struct {
	Path string
}

// NewDirectoryNotFoundError constructs a DirectoryNotFoundError.
func NewDirectoryNotFoundError(path string) error {
	return &DirectoryNotFoundError{Path: path}
}

func (e *DirectoryNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("directory not found: %s", e.Path)
}

// DirectoryPermissionError reports a plugin directory that exists but
// cannot be opened.
type DirectoryPermissionError struct {
	Path string
	Err  error
}

// NewDirectoryPermissionError constructs a DirectoryPermissionError.
func NewDirectoryPermissionError(path string, err error) error {
	return &DirectoryPermissionError{Path: path, Err: err}
}

func (e *DirectoryPermissionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("permission denied: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *DirectoryPermissionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LibraryNotFoundError reports that libyabridge.so was not present in any
// of the probed locations.
type LibraryNotFoundError struct {
	Searched []string
}

// NewLibraryNotFoundError constructs a LibraryNotFoundError listing the
// probed locations.
func NewLibraryNotFoundError(searched []string) error {
	return &LibraryNotFoundError{Searched: searched}
}

func (e *LibraryNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Searched) == 0 {
		return "libyabridge.so not found"
	}
	return fmt.Sprintf("libyabridge.so not found, searched: %s", strings.Join(e.Searched, ", "))
}

// InstallationCheckError reports that the companion artifact for a plugin
// file could not be inspected.
type InstallationCheckError struct {
	Path string
	Err  error
}

// NewInstallationCheckError constructs an InstallationCheckError.
func NewInstallationCheckError(path string, err error) error {
	return &InstallationCheckError{Path: path, Err: err}
}

func (e *InstallationCheckError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("installation check failed: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *InstallationCheckError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
