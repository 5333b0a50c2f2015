// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"pvdb-cli/pkg/pvdb"
)

const (
	// SchemaEntry decodes base pv_db.txt records.
	SchemaEntry Schema = "entry"
	// SchemaMdata decodes mdata patch records.
	SchemaMdata Schema = "mdata"

	// FormatTable renders a summary table.
	FormatTable OutputFormat = "table"
	// FormatJSON renders indented JSON.
	FormatJSON OutputFormat = "json"
	// FormatYAML renders YAML.
	FormatYAML OutputFormat = "yaml"
	// FormatTOML renders TOML.
	FormatTOML OutputFormat = "toml"
	// FormatDump renders a Go value dump.
	FormatDump OutputFormat = "dump"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidSchema is returned when a Schema value is not recognized.
	ErrInvalidSchema = errors.New("invalid schema")
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidKeyPrefix is the sentinel error wrapped by InvalidKeyPrefixError.
	ErrInvalidKeyPrefix = errors.New("invalid key prefix")
	// ErrInvalidCommentMarker is the sentinel error wrapped by InvalidCommentMarkerError.
	ErrInvalidCommentMarker = errors.New("invalid comment marker")
	// ErrInvalidStorePath is the sentinel error wrapped by InvalidStorePathError.
	ErrInvalidStorePath = errors.New("invalid store path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Schema selects the record type a pv_db file is decoded into.
	Schema string

	// InvalidSchemaError is returned when a Schema value is not recognized.
	// It wraps ErrInvalidSchema for errors.Is() compatibility.
	InvalidSchemaError struct {
		Value Schema
	}

	// OutputFormat selects how decoded catalogues are printed.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// LogLevel is the minimum level of diagnostic log lines.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// KeyPrefix is the literal preceding the identifier in a record key.
	// It must be non-empty and free of whitespace, "." and "=", since those
	// would make every key unparsable.
	KeyPrefix string

	// InvalidKeyPrefixError is returned when a KeyPrefix value is rejected.
	InvalidKeyPrefixError struct {
		Value KeyPrefix
	}

	// CommentMarker starts lines the normalizer discards. The zero value
	// disables comment handling. A marker containing "=" is rejected.
	CommentMarker string

	// InvalidCommentMarkerError is returned when a CommentMarker value is rejected.
	InvalidCommentMarkerError struct {
		Value CommentMarker
	}

	// StorePath is the SQLite database file. It must not be whitespace-only.
	StorePath string

	// InvalidStorePathError is returned when a StorePath value is rejected.
	InvalidStorePathError struct {
		Value StorePath
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Decode configures how pv_db files are read
		Decode DecodeConfig `json:"decode" mapstructure:"decode"`
		// Output configures how catalogues are printed
		Output OutputConfig `json:"output" mapstructure:"output"`
		// Log configures diagnostic logging
		Log LogConfig `json:"log" mapstructure:"log"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Store configures the SQLite catalogue store
		Store StoreConfig `json:"store" mapstructure:"store"`
	}

	// DecodeConfig configures how pv_db files are read.
	DecodeConfig struct {
		Prefix        KeyPrefix     `json:"prefix" mapstructure:"prefix"`
		CommentMarker CommentMarker `json:"comment_marker" mapstructure:"comment_marker"`
		Schema        Schema        `json:"schema" mapstructure:"schema"`
	}

	// OutputConfig configures how catalogues are printed.
	OutputConfig struct {
		Format OutputFormat `json:"format" mapstructure:"format"`
	}

	// LogConfig configures diagnostic logging.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// StoreConfig configures the SQLite catalogue store.
	StoreConfig struct {
		Path StorePath `json:"path" mapstructure:"path"`
	}
)

// IsValid returns whether the Config has valid fields. Field errors of all
// sections are collected into one InvalidConfigError.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	for _, check := range []func() (bool, []error){
		c.Decode.Prefix.IsValid,
		c.Decode.CommentMarker.IsValid,
		c.Decode.Schema.IsValid,
		c.Output.Format.IsValid,
		c.Log.Level.IsValid,
		c.UI.ColorScheme.IsValid,
		c.Store.Path.IsValid,
	} {
		if valid, fieldErrs := check(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig and the field errors, so errors.Is()
// matches both the config sentinel and each field sentinel.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// String returns the string representation of the Schema.
func (s Schema) String() string { return string(s) }

// IsValid returns whether the Schema is one of the defined schemas.
func (s Schema) IsValid() (bool, []error) {
	switch s {
	case SchemaEntry, SchemaMdata:
		return true, nil
	default:
		return false, []error{&InvalidSchemaError{Value: s}}
	}
}

// Error implements the error interface for InvalidSchemaError.
func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("invalid schema %q (valid: entry, mdata)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidSchemaError) Unwrap() error { return ErrInvalidSchema }

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case FormatTable, FormatJSON, FormatYAML, FormatTOML, FormatDump:
		return true, nil
	default:
		return false, []error{&InvalidOutputFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidOutputFormatError.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: table, json, yaml, toml, dump)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the KeyPrefix.
func (p KeyPrefix) String() string { return string(p) }

// IsValid returns whether the KeyPrefix can precede an identifier.
func (p KeyPrefix) IsValid() (bool, []error) {
	if p == "" || strings.ContainsAny(string(p), ".= \t\r\n") {
		return false, []error{&InvalidKeyPrefixError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidKeyPrefixError.
func (e *InvalidKeyPrefixError) Error() string {
	return fmt.Sprintf("invalid key prefix %q: must be non-empty without whitespace, '.' or '='", e.Value)
}

// Unwrap returns ErrInvalidKeyPrefix for errors.Is() compatibility.
func (e *InvalidKeyPrefixError) Unwrap() error { return ErrInvalidKeyPrefix }

// String returns the string representation of the CommentMarker.
func (m CommentMarker) String() string { return string(m) }

// IsValid returns whether the CommentMarker is usable.
// The zero value ("") is valid and disables comments.
func (m CommentMarker) IsValid() (bool, []error) {
	if strings.Contains(string(m), "=") {
		return false, []error{&InvalidCommentMarkerError{Value: m}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCommentMarkerError.
func (e *InvalidCommentMarkerError) Error() string {
	return fmt.Sprintf("invalid comment marker %q: must not contain '='", e.Value)
}

// Unwrap returns ErrInvalidCommentMarker for errors.Is() compatibility.
func (e *InvalidCommentMarkerError) Unwrap() error { return ErrInvalidCommentMarker }

// String returns the string representation of the StorePath.
func (p StorePath) String() string { return string(p) }

// IsValid returns whether the StorePath names a file.
func (p StorePath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidStorePathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidStorePathError.
func (e *InvalidStorePathError) Error() string {
	return fmt.Sprintf("invalid store path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidStorePath for errors.Is() compatibility.
func (e *InvalidStorePathError) Unwrap() error { return ErrInvalidStorePath }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Decode: DecodeConfig{
			Prefix:        pvdb.DefaultPrefix,
			CommentMarker: pvdb.DefaultCommentMarker,
			Schema:        SchemaEntry,
		},
		Output: OutputConfig{
			Format: FormatTable,
		},
		Log: LogConfig{
			Level: LogLevelWarn,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Store: StoreConfig{
			Path: "pvdb.db",
		},
	}
}
