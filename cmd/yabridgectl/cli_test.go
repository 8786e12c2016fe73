package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI against a throwaway config location.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeFile(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), mode))
}

func TestAddAndList(t *testing.T) {
	isolateConfig(t)
	plugins := t.TempDir()

	_, _, err := runCommand(t, "add", plugins)
	require.NoError(t, err)

	stdout, _, err := runCommand(t, "list")
	require.NoError(t, err)
	assert.Equal(t, plugins+"\n", stdout)
}

func TestAddMissingPathFails(t *testing.T) {
	isolateConfig(t)

	_, _, err := runCommand(t, "add", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	isolateConfig(t)
	plugins := t.TempDir()

	_, _, err := runCommand(t, "add", plugins)
	require.NoError(t, err)

	stdout, _, err := runCommand(t, "add", plugins)
	require.NoError(t, err)
	assert.Contains(t, stdout, "already registered")

	listOut, _, err := runCommand(t, "list")
	require.NoError(t, err)
	assert.Equal(t, plugins+"\n", listOut)
}

func TestRemove(t *testing.T) {
	isolateConfig(t)
	plugins := t.TempDir()

	_, _, err := runCommand(t, "add", plugins)
	require.NoError(t, err)

	_, _, err = runCommand(t, "rm", plugins)
	require.NoError(t, err)

	stdout, _, err := runCommand(t, "list")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestRemoveUnregisteredIsIdempotent(t *testing.T) {
	isolateConfig(t)

	_, stderr, err := runCommand(t, "rm", "/never/registered")
	require.NoError(t, err)
	assert.Contains(t, stderr, "not registered")
}

func TestListDeterministicOrder(t *testing.T) {
	isolateConfig(t)
	base := t.TempDir()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		dir := filepath.Join(base, name)
		require.NoError(t, os.Mkdir(dir, 0o755))
		_, _, err := runCommand(t, "add", dir)
		require.NoError(t, err)
	}

	stdout, _, err := runCommand(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Equal(t, []string{
		filepath.Join(base, "alpha"),
		filepath.Join(base, "mid"),
		filepath.Join(base, "zeta"),
	}, lines)
}

func TestStatusEndToEnd(t *testing.T) {
	isolateConfig(t)

	yabridgeHome := t.TempDir()
	library := filepath.Join(yabridgeHome, "libyabridge.so")
	writeFile(t, library, 0o755)

	plugins := t.TempDir()
	writeFile(t, filepath.Join(plugins, "Synth.dll"), 0o644)
	require.NoError(t, os.Symlink(library, filepath.Join(plugins, "Synth.so")))
	writeFile(t, filepath.Join(plugins, "Bare.dll"), 0o644)

	_, _, err := runCommand(t, "add", plugins)
	require.NoError(t, err)
	_, _, err = runCommand(t, "set", "--path", yabridgeHome, "--method", "symlink")
	require.NoError(t, err)

	stdout, _, err := runCommand(t, "status")
	require.NoError(t, err)

	assert.Contains(t, stdout, "yabridge path: '"+yabridgeHome+"'")
	assert.Contains(t, stdout, "libyabridge.so: '"+library+"'")
	assert.Contains(t, stdout, "installation method: symlink")
	assert.Contains(t, stdout, plugins+":")
	assert.Contains(t, stdout, "Synth.dll :: symlink")
	assert.Contains(t, stdout, "Bare.dll :: not installed")
}

func TestStatusIsolatesBrokenDirectory(t *testing.T) {
	isolateConfig(t)

	present := t.TempDir()
	writeFile(t, filepath.Join(present, "Synth.dll"), 0o644)

	missing := filepath.Join(t.TempDir(), "registered-then-deleted")
	require.NoError(t, os.Mkdir(missing, 0o755))

	_, _, err := runCommand(t, "add", present)
	require.NoError(t, err)
	_, _, err = runCommand(t, "add", missing)
	require.NoError(t, err)

	require.NoError(t, os.Remove(missing))

	stdout, _, err := runCommand(t, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Synth.dll :: not installed")
	assert.Contains(t, stdout, "directory not found")
}

func TestStatusLibraryNotFound(t *testing.T) {
	isolateConfig(t)

	// Point the override at a directory without the library.
	empty := t.TempDir()
	_, _, err := runCommand(t, "set", "--path", empty)
	require.NoError(t, err)

	stdout, _, err := runCommand(t, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "libyabridge.so: <not found>")
}

func TestSetMethodPersists(t *testing.T) {
	isolateConfig(t)

	_, _, err := runCommand(t, "set", "--method", "symlink")
	require.NoError(t, err)

	stdout, _, err := runCommand(t, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "installation method: symlink")
}

func TestSetRejectsUnknownMethod(t *testing.T) {
	isolateConfig(t)

	_, _, err := runCommand(t, "set", "--method", "hardlink")
	assert.Error(t, err)
}

func TestSetClearsOverride(t *testing.T) {
	isolateConfig(t)

	home := t.TempDir()
	_, _, err := runCommand(t, "set", "--path", home)
	require.NoError(t, err)

	_, _, err = runCommand(t, "set", "--path", "")
	require.NoError(t, err)

	stdout, _, err := runCommand(t, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "yabridge path: <auto>")
}

func TestSyncInstallsCompanions(t *testing.T) {
	isolateConfig(t)

	yabridgeHome := t.TempDir()
	library := filepath.Join(yabridgeHome, "libyabridge.so")
	writeFile(t, library, 0o755)

	plugins := t.TempDir()
	writeFile(t, filepath.Join(plugins, "Synth.dll"), 0o644)

	_, _, err := runCommand(t, "add", plugins)
	require.NoError(t, err)
	_, _, err = runCommand(t, "set", "--path", yabridgeHome, "--method", "symlink")
	require.NoError(t, err)

	stdout, _, err := runCommand(t, "sync")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 installed")

	target, err := os.Readlink(filepath.Join(plugins, "Synth.so"))
	require.NoError(t, err)
	assert.Equal(t, library, target)
}

func TestSyncFailsWithoutLibrary(t *testing.T) {
	isolateConfig(t)

	empty := t.TempDir()
	_, _, err := runCommand(t, "set", "--path", empty)
	require.NoError(t, err)

	_, _, err = runCommand(t, "sync")
	assert.Error(t, err)
}
