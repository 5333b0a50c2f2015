// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pvdb-cli/internal/issue"
	"pvdb-cli/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the pvdb command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pvdb",
		Short: "Decode Project DIVA pv_db song databases",
		Long: TitleStyle.Render("pvdb") + SubtitleStyle.Render(" - Decode Project DIVA pv_db song databases") + `

pvdb reads the flat key=value song databases of Project DIVA
(pv_db.txt and mdata patch files) and turns them into a catalogue
of songs keyed by their numeric identifier.

Broken entries are skipped, not fatal. Use --report to list them.

` + SubtitleStyle.Render("Examples:") + `
  pvdb decode pv_db.txt                 Print a summary table
  pvdb decode pv_db.txt -f json         Export every entry as JSON
  pvdb show pv_db.txt 1                 Render entry pv_001
  pvdb import pv_db.txt --db songs.db   Store entries in SQLite
  pvdb config show                      Show current configuration`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app.loadSettings(cmd.Context())
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pvdb/config.cue)")

	rootCmd.AddCommand(newDecodeCommand(app))
	rootCmd.AddCommand(newIDsCommand(app))
	rootCmd.AddCommand(newShowCommand(app))
	rootCmd.AddCommand(newNormalizeCommand(app))
	rootCmd.AddCommand(newImportCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(int(types.ExitFailure))
	}

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitFailure))
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
