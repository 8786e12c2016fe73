package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>",
		Short: "Remove a plugin install location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(app, cmd, args[0])
		},
	}
}

func runRemove(app *appContext, cmd *cobra.Command, path string) error {
	cfg, err := app.store.Load()
	if err != nil {
		return err
	}

	changed, err := cfg.RemoveDirectory(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	// Removing an unregistered path is idempotent, not an error.
	if !changed {
		fmt.Fprintf(cmd.ErrOrStderr(), "'%s' is not registered\n", path)
		return nil
	}

	if err := app.store.Save(cfg); err != nil {
		return err
	}

	app.log.WithFields(map[string]any{"path": path}).Info("plugin directory removed")

	return nil
}
