// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

// StaticProvider returns a fixed configuration. Commands under test use it
// to skip the filesystem.
type StaticProvider struct {
	Config *Config
}

type fileProvider struct{}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load returns a copy of the static config, or the defaults when none is set.
func (p StaticProvider) Load(context.Context, LoadOptions) (*Config, error) {
	if p.Config == nil {
		return DefaultConfig(), nil
	}
	cfg := *p.Config
	return &cfg, nil
}
