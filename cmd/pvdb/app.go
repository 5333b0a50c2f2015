// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"pvdb-cli/internal/config"
	"pvdb-cli/internal/store"
	"pvdb-cli/pkg/pvdb"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. All Cobra command
	// handlers receive an App reference and read the settings resolved by
	// the root command through it.
	App struct {
		Config ConfigProvider
		Clock  store.Clock
		stdout io.Writer
		stderr io.Writer

		// Set by persistent flags.
		verbose bool
		cfgFile string

		// Resolved once per invocation by loadSettings.
		cfg    *config.Config
		logger *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Clock  store.Clock
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	return &App{
		Config: deps.Config,
		Clock:  deps.Clock,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
		logger: newLogger(deps.Stderr, config.LogLevelWarn, false),
	}, nil
}

// loadOptions returns the config loading inputs selected by global flags.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.cfgFile}
}

// loadSettings loads configuration and builds the logger. A broken config
// is reported as a warning and the defaults apply, so that `pvdb config`
// subcommands stay usable to repair it.
func (a *App) loadSettings(ctx context.Context) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
		cfg = config.DefaultConfig()
	}

	if !a.verbose {
		a.verbose = cfg.UI.Verbose
	}

	a.cfg = cfg
	a.logger = newLogger(a.stderr, cfg.Log.Level, a.verbose)
}

// newLogger returns a logger writing to w. Verbose mode lowers the level
// to debug regardless of the configured level.
func newLogger(w io.Writer, level config.LogLevel, verbose bool) *log.Logger {
	lvl, err := log.ParseLevel(string(level))
	if err != nil {
		lvl = log.WarnLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  lvl,
	})
}

// decodeOptions returns the pvdb options for the configured key prefix and
// comment marker, followed by extra.
func (a *App) decodeOptions(extra ...pvdb.Option) []pvdb.Option {
	opts := []pvdb.Option{
		pvdb.WithPrefix(string(a.cfg.Decode.Prefix)),
		pvdb.WithCommentMarker(string(a.cfg.Decode.CommentMarker)),
		pvdb.WithLogger(a.logger),
	}
	return append(opts, extra...)
}

// glamourStyle maps the configured color scheme to a glamour style name.
func (a *App) glamourStyle() string {
	switch a.cfg.UI.ColorScheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
