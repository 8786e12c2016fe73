package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yabridge/yabridgectl/internal/library"
	"github.com/yabridge/yabridgectl/internal/status"
)

var (
	installedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func newStatusCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the installation status for all plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(app, cmd)
		},
	}
}

func runStatus(app *appContext, cmd *cobra.Command) error {
	cfg, err := app.store.Load()
	if err != nil {
		return err
	}

	styled := isTerminal(cmd.OutOrStdout())
	out := cmd.OutOrStdout()

	home := "<auto>"
	if cfg.YabridgeHome != "" {
		home = fmt.Sprintf("'%s'", cfg.YabridgeHome)
	}
	fmt.Fprintf(out, "yabridge path: %s\n", home)

	libraryPath, err := library.NewLocator(cfg).Resolve()
	if err != nil {
		fmt.Fprintf(out, "%s: %s\n", library.LibraryName, colorize("<not found>", missingStyle, styled))
	} else {
		fmt.Fprintf(out, "%s: '%s'\n", library.LibraryName, libraryPath)
	}

	fmt.Fprintf(out, "installation method: %s\n", cfg.Method)

	reports := status.NewReporter(app.log).Compose(cfg)
	for _, report := range reports {
		fmt.Fprintf(out, "\n%s:\n", report.Directory)

		if report.Err != nil {
			fmt.Fprintf(out, "  %s\n", colorize(report.Err.Error(), missingStyle, styled))
			continue
		}

		for _, plugin := range report.Plugins {
			fmt.Fprintf(out, "  %s :: %s\n", displayPath(report.Directory, plugin.Path), formatArtifact(plugin, styled))
		}
	}

	return nil
}

func formatArtifact(plugin status.PluginStatus, styled bool) string {
	switch {
	case plugin.Err != nil:
		return colorize("unknown", missingStyle, styled)
	case plugin.Artifact == nil:
		return colorize("not installed", missingStyle, styled)
	default:
		return colorize(plugin.Artifact.Kind.String(), installedStyle, styled)
	}
}

// displayPath shows plugins relative to their registered directory, so
// nested plugins stay readable.
func displayPath(dir, plugin string) string {
	rel, err := filepath.Rel(dir, plugin)
	if err != nil {
		return plugin
	}
	return rel
}

func colorize(text string, style lipgloss.Style, styled bool) string {
	if !styled {
		return text
	}
	return style.Render(text)
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
