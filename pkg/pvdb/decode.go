// SPDX-License-Identifier: MPL-2.0

package pvdb

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"pvdb-cli/pkg/divatree"
)

type (
	// EntrySource yields decoded records one at a time. Next returns io.EOF,
	// unwrapped, when the source is exhausted. Any other error applies to
	// the current record only and the caller may keep pulling.
	EntrySource[T any] interface {
		Next() (key string, record T, err error)
	}

	// Opener starts decoding normalized text. An error means the text could
	// not be decoded at all.
	Opener[T any] func(normalized string) (EntrySource[T], error)
)

// OpenDivatree is the default Opener. It decodes records with a
// divatree.MapDecoder.
func OpenDivatree[T any](normalized string) (EntrySource[T], error) {
	dec, err := divatree.NewMapDecoder[T](normalized)
	if err != nil {
		return nil, err
	}
	return dec, nil
}

// Build drains src into a catalogue. Records that fail to decode and
// records whose key carries no identifier are skipped. When two records
// share an identifier the later one wins.
func Build[T any](src EntrySource[T], opts ...Option) *Catalogue[T] {
	return build(src, newSettings(opts))
}

func build[T any](src EntrySource[T], s settings) *Catalogue[T] {
	records := make(map[uint32]T)
	skipped := 0
	skip := func(sk Skip) {
		skipped++
		if s.logger != nil {
			s.logger.Debug("skipped record", "key", sk.Key, "reason", sk.Reason, "err", sk.Err)
		}
		if s.sink != nil {
			s.sink(sk)
		}
	}

	for {
		key, rec, err := src.Next()
		if err == io.EOF {
			break
		}
		id, hasID := ExtractIdentifier(s.prefix, key)
		if err != nil {
			skip(Skip{Key: key, ID: id, Reason: SkipDecodeError, Err: err})
			continue
		}
		if !hasID {
			skip(Skip{Key: key, Reason: SkipKeyPattern})
			continue
		}
		if _, exists := records[id]; exists {
			skip(Skip{Key: key, ID: id, Reason: SkipOverwritten})
		}
		records[id] = rec
	}

	cat := newCatalogue(records)
	if s.logger != nil {
		s.logger.Debug("catalogue built", "records", cat.Len(), "skipped", skipped)
	}
	return cat
}

// Decode normalizes text and decodes it into a catalogue with the default
// divatree decoder.
func Decode[T any](text string, opts ...Option) (*Catalogue[T], error) {
	return DecodeWith[T](text, OpenDivatree[T], opts...)
}

// DecodeWith normalizes text and decodes it into a catalogue with the given
// opener. The opener is called exactly once.
func DecodeWith[T any](text string, open Opener[T], opts ...Option) (*Catalogue[T], error) {
	s := newSettings(opts)
	src, err := open(normalize(text, s.commentMarker))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenDecoder, err)
	}
	return build(src, s), nil
}

// ParseFile reads the file at path and decodes it into a catalogue. The
// file must be valid UTF-8.
func ParseFile[T any](path string, opts ...Option) (*Catalogue[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", ErrReadInput, path)
	}
	return Decode[T](string(data), opts...)
}

// Parse decodes a base pv_db file into a catalogue of Entry records.
func Parse(path string, opts ...Option) (*Catalogue[Entry], error) {
	return ParseFile[Entry](path, opts...)
}

// FromString decodes base pv_db text into a catalogue of Entry records.
func FromString(text string, opts ...Option) (*Catalogue[Entry], error) {
	return Decode[Entry](text, opts...)
}
