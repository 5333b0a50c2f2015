// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"pvdb-cli/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `pvdb config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pvdb configuration",
		Long: `Manage pvdb configuration.

Configuration is stored in:
  - Linux: ~/.config/pvdb/config.cue
  - macOS: ~/Library/Application Support/pvdb/config.cue
  - Windows: %APPDATA%\pvdb\config.cue

Every key can be overridden with a PVDB_* environment variable,
for example PVDB_OUTPUT_FORMAT=json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := showConfig(cmd.Context(), app); err != nil {
				return app.fail(cmd, err)
			}
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := config.CreateDefaultConfig("")
			if err != nil {
				return app.fail(cmd, fmt.Errorf("failed to create config: %w", err))
			}
			if !created {
				fmt.Fprintf(app.stdout, "Configuration already exists at %s\n", path)
				return nil
			}
			fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, found, err := config.Path(app.loadOptions())
			if err != nil {
				return app.fail(cmd, err)
			}
			fmt.Fprintf(app.stdout, "Config file: %s\n", path)
			if !found {
				fmt.Fprintln(app.stdout, SubtitleStyle.Render("(not found, using defaults)"))
			}
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), app.loadOptions())
			if err != nil {
				return app.fail(cmd, err)
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.Config.Load(ctx, app.loadOptions())
	if err != nil {
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if path, found, pathErr := config.Path(app.loadOptions()); pathErr == nil && found {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	section := func(name string, fields ...[2]string) {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s:\n", keyStyle.Render(name))
		for _, f := range fields {
			fmt.Fprintf(w, "  %s: %s\n", f[0], valueStyle.Render(f[1]))
		}
	}

	section("decode",
		[2]string{"prefix", cfg.Decode.Prefix.String()},
		[2]string{"comment_marker", cfg.Decode.CommentMarker.String()},
		[2]string{"schema", cfg.Decode.Schema.String()},
	)
	section("output", [2]string{"format", cfg.Output.Format.String()})
	section("log", [2]string{"level", cfg.Log.Level.String()})
	section("ui",
		[2]string{"color_scheme", cfg.UI.ColorScheme.String()},
		[2]string{"verbose", fmt.Sprintf("%v", cfg.UI.Verbose)},
	)
	section("store", [2]string{"path", cfg.Store.Path.String()})

	return nil
}
