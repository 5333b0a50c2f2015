// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize is the largest document accepted by default (1 MiB).
const DefaultMaxFileSize int64 = 1 << 20

const defaultFilename = "<input>"

type (
	parseOptions struct {
		maxFileSize int64
		concrete    bool
		filename    string
	}

	// Option configures how a document is validated.
	Option func(*parseOptions)
)

func newParseOptions(opts []Option) parseOptions {
	o := parseOptions{
		maxFileSize: DefaultMaxFileSize,
		concrete:    true,
		filename:    defaultFilename,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxFileSize rejects documents larger than size bytes.
func WithMaxFileSize(size int64) Option {
	return func(o *parseOptions) { o.maxFileSize = size }
}

// WithConcrete controls whether every field must hold a concrete value after
// unification. It defaults to true. Configuration files, where most fields
// are optional and defaulted elsewhere, use false.
func WithConcrete(concrete bool) Option {
	return func(o *parseOptions) { o.concrete = concrete }
}

// WithFilename names the document in error messages.
func WithFilename(name string) Option {
	return func(o *parseOptions) {
		if name != "" {
			o.filename = name
		}
	}
}
