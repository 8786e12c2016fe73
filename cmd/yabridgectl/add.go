package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pkgerrors "github.com/yabridge/yabridgectl/pkg/errors"
)

func newAddCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>",
		Short: "Add a plugin install location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(app, cmd, args[0])
		},
	}
}

func runAdd(app *appContext, cmd *cobra.Command, path string) error {
	if err := validateDirectory(path); err != nil {
		return err
	}

	cfg, err := app.store.Load()
	if err != nil {
		return err
	}

	changed, err := cfg.AddDirectory(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	if !changed {
		fmt.Fprintf(cmd.OutOrStdout(), "'%s' is already registered\n", path)
		return nil
	}

	if err := app.store.Save(cfg); err != nil {
		return err
	}

	app.log.WithFields(map[string]any{"path": path}).Info("plugin directory registered")

	return nil
}

// validateDirectory checks that path exists and is a directory. Explicit
// single-path validation failures are fatal, unlike scan failures during
// status composition.
func validateDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return pkgerrors.NewDirectoryNotFoundError(path)
		}
		return pkgerrors.NewDirectoryPermissionError(path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("'%s' is not a directory", path)
	}

	return nil
}
