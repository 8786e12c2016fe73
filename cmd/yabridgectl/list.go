package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the plugin install locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.store.Load()
			if err != nil {
				return err
			}

			for _, dir := range cfg.Directories() {
				fmt.Fprintln(cmd.OutOrStdout(), dir)
			}

			return nil
		},
	}
}
