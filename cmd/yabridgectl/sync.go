package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yabridge/yabridgectl/internal/installer"
	"github.com/yabridge/yabridgectl/internal/library"
)

func newSyncCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Install the bridge library for all registered plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(app, cmd)
		},
	}
}

func runSync(app *appContext, cmd *cobra.Command) error {
	cfg, err := app.store.Load()
	if err != nil {
		return err
	}

	// Unlike status, sync cannot proceed without the library.
	libraryPath, err := library.NewLocator(cfg).Resolve()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failures := 0

	for _, result := range installer.SyncAll(cfg, libraryPath) {
		if result.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", result.Directory, result.Err)
			failures++
			continue
		}

		fmt.Fprintf(out, "%s: %d installed, %d replaced\n", result.Directory, result.Installed, result.Replaced)

		for _, plugin := range result.Failed {
			fmt.Fprintf(cmd.ErrOrStderr(), "  failed to install for %s\n", plugin)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("sync finished with %d failure(s)", failures)
	}

	app.log.WithFields(map[string]any{"method": cfg.Method}).Info("sync complete")

	return nil
}
