// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"pvdb-cli/internal/issue"
	"pvdb-cli/pkg/cueutil"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "pvdb"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment variables that override config keys,
	// for example PVDB_OUTPUT_FORMAT for output.format.
	EnvPrefix = "PVDB"

	schemaDefinition = "#Config"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the pvdb configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Path returns the config file loading would read. An explicit
// ConfigFilePath is returned as is; otherwise the file in the config
// directory, then config.cue in the working directory. found reports whether
// the returned file exists. When nothing exists the config directory path is
// returned, which is where CreateDefaultConfig writes.
func Path(opts LoadOptions) (path string, found bool, err error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, fileExists(opts.ConfigFilePath), nil
	}

	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", false, err
	}

	dirPath := filepath.Join(cfgDir, configFileBase())
	if fileExists(dirPath) {
		return dirPath, true, nil
	}
	if local := configFileBase(); fileExists(local) {
		return local, true, nil
	}
	return dirPath, false, nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state. It returns the config and the file it was read from,
// which is empty when only defaults and environment applied.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := newViper()

	path, found, err := Path(opts)
	if err != nil {
		return nil, "", err
	}

	if opts.ConfigFilePath != "" && !found {
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(opts.ConfigFilePath).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Use 'pvdb config show' to see the default configuration").
			Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
			BuildError()
	}

	resolvedPath := ""
	if found {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				Wrap(err).
				BuildError()
		}
		resolvedPath = path
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Environment overrides bypass the CUE schema, so the merged result is
	// validated again.
	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Check " + EnvPrefix + "_* environment variables for typos").
			Wrap(errors.Join(errs...)).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// newViper returns a viper instance holding the defaults and bound to
// PVDB_* environment variables. Every key needs a default for
// AutomaticEnv to reach it during Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("decode.prefix", defaults.Decode.Prefix)
	v.SetDefault("decode.comment_marker", defaults.Decode.CommentMarker)
	v.SetDefault("decode.schema", defaults.Decode.Schema)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("store.path", defaults.Store.Path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

func configFileBase() string {
	return ConfigFileName + "." + ConfigFileExt
}

// loadCUEIntoViper validates a CUE file against #Config and merges its
// contents into v. Fields are optional, so the value is decoded into a map
// rather than a Config and defaults stay in place for what the file omits.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	res, err := cueutil.ParseAndDecodeString[map[string]any](configSchema, data, schemaDefinition,
		cueutil.WithConcrete(false),
		cueutil.WithFilename(path),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(*res.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default configuration into the config
// directory unless a config file already exists there. It returns the file
// path and whether it was written.
func CreateDefaultConfig(configDirPath string) (string, bool, error) {
	cfgDir, err := configDirWithOverride(configDirPath)
	if err != nil {
		return "", false, err
	}

	cfgPath := filepath.Join(cfgDir, configFileBase())
	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, false, nil
	}

	path, err := Save(DefaultConfig(), cfgDir)
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

// Save writes cfg as CUE into the config directory, replacing any existing
// file, and returns the file path.
func Save(cfg *Config, configDirPath string) (string, error) {
	cfgDir, err := configDirWithOverride(configDirPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, configFileBase())
	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return cfgPath, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// pvdb configuration file\n")
	sb.WriteString("// Fields may be removed to fall back to the built-in defaults.\n\n")

	sb.WriteString("decode: {\n")
	fmt.Fprintf(&sb, "\tprefix:         %q\n", cfg.Decode.Prefix)
	fmt.Fprintf(&sb, "\tcomment_marker: %q\n", cfg.Decode.CommentMarker)
	fmt.Fprintf(&sb, "\tschema:         %q\n", cfg.Decode.Schema)
	sb.WriteString("}\n")

	sb.WriteString("\noutput: {\n")
	fmt.Fprintf(&sb, "\tformat: %q\n", cfg.Output.Format)
	sb.WriteString("}\n")

	sb.WriteString("\nlog: {\n")
	fmt.Fprintf(&sb, "\tlevel: %q\n", cfg.Log.Level)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	sb.WriteString("\nstore: {\n")
	fmt.Fprintf(&sb, "\tpath: %q\n", cfg.Store.Path)
	sb.WriteString("}\n")

	return sb.String()
}
