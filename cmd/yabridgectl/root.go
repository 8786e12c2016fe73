package main

import (
	"github.com/spf13/cobra"

	"github.com/yabridge/yabridgectl/internal/config"
	"github.com/yabridge/yabridgectl/internal/logger"
)

type rootFlags struct {
	verbose bool
}

// appContext carries the collaborators shared by every subcommand.
type appContext struct {
	log   *logger.Logger
	store *config.Store
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "yabridgectl",
		Short:         "yabridgectl manages yabridge installations for Windows audio plugins",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if flags.verbose {
				level = "debug"
			}

			log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
			if err != nil {
				return err
			}
			app.log = log

			configPath, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.store = config.NewStore(configPath)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newSyncCmd(app))
	cmd.AddCommand(newSetCmd(app))

	return cmd
}
