package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yabridge/yabridgectl/internal/config"
)

type setOptions struct {
	method string
	path   string
}

func newSetCmd(app *appContext) *cobra.Command {
	opts := &setOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change installation settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(app, cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.method, "method", "", "Installation method, either 'copy' or 'symlink'")
	cmd.Flags().StringVar(&opts.path, "path", "", "Path to a directory containing libyabridge.so, or '' to autodetect")

	return cmd
}

func runSet(app *appContext, cmd *cobra.Command, opts *setOptions) error {
	methodSet := cmd.Flags().Changed("method")
	pathSet := cmd.Flags().Changed("path")

	if !methodSet && !pathSet {
		return fmt.Errorf("nothing to change, pass --method or --path")
	}

	cfg, err := app.store.Load()
	if err != nil {
		return err
	}

	if methodSet {
		method, ok := config.ParseMethod(opts.method)
		if !ok {
			return fmt.Errorf("invalid method %q, expected 'copy' or 'symlink'", opts.method)
		}
		cfg.Method = method
	}

	if pathSet {
		if opts.path == "" {
			cfg.YabridgeHome = ""
		} else {
			if err := validateDirectory(opts.path); err != nil {
				return err
			}
			normalized, err := config.NormalizePath(opts.path)
			if err != nil {
				return err
			}
			cfg.YabridgeHome = normalized
		}
	}

	if err := app.store.Save(cfg); err != nil {
		return err
	}

	app.log.WithFields(map[string]any{"method": cfg.Method, "yabridge_home": cfg.YabridgeHome}).Info("settings updated")

	return nil
}
