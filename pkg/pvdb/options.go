// SPDX-License-Identifier: MPL-2.0

package pvdb

import "github.com/charmbracelet/log"

type (
	// Option configures normalization and catalogue building.
	Option func(*settings)

	settings struct {
		prefix        string
		commentMarker string
		sink          func(Skip)
		logger        *log.Logger
	}
)

func newSettings(opts []Option) settings {
	s := settings{
		prefix:        DefaultPrefix,
		commentMarker: DefaultCommentMarker,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithPrefix sets the literal that precedes the identifier in record keys.
func WithPrefix(prefix string) Option {
	return func(s *settings) { s.prefix = prefix }
}

// WithCommentMarker sets the prefix of lines dropped as comments. An empty
// marker keeps every line that contains a separator.
func WithCommentMarker(marker string) Option {
	return func(s *settings) { s.commentMarker = marker }
}

// WithSkipSink registers a function that receives every skipped record.
// Several sinks can be registered and all of them are called in order.
func WithSkipSink(sink func(Skip)) Option {
	return func(s *settings) {
		if sink == nil {
			return
		}
		prev := s.sink
		if prev == nil {
			s.sink = sink
			return
		}
		s.sink = func(sk Skip) {
			prev(sk)
			sink(sk)
		}
	}
}

// WithLogger logs skipped records and a build summary at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) { s.logger = logger }
}
