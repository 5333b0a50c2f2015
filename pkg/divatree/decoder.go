// SPDX-License-Identifier: MPL-2.0

package divatree

import "io"

// MapDecoder yields the top-level entries of a document one at a time,
// extracting each into a value of type T.
type MapDecoder[T any] struct {
	entries []*Node
	broken  map[string]*SyntaxError
	pos     int
}

// NewMapDecoder parses text once and returns a decoder positioned at the
// first top-level entry. A line that conflicts inside one entry only breaks
// that entry. Lines that cannot be attributed to an entry are returned here
// as a *SyntaxError and no entries are produced.
func NewMapDecoder[T any](text string) (*MapDecoder[T], error) {
	root, broken, err := parseEntries(text)
	if err != nil {
		return nil, err
	}
	return &MapDecoder[T]{entries: root.Children(), broken: broken}, nil
}

// Next returns the key and extracted value of the next entry. It returns
// io.EOF once every entry has been consumed. When an entry holds a
// conflicting line or cannot be extracted, Next returns an *EntryError for it and the following call
// continues with the next entry.
func (d *MapDecoder[T]) Next() (string, T, error) {
	var zero T
	if d.pos >= len(d.entries) {
		return "", zero, io.EOF
	}
	n := d.entries[d.pos]
	d.pos++

	if syn, ok := d.broken[n.Name()]; ok {
		return n.Name(), zero, &EntryError{Key: n.Name(), Err: syn}
	}

	var v T
	if err := Unmarshal(n, &v); err != nil {
		return n.Name(), zero, &EntryError{Key: n.Name(), Err: err}
	}
	return n.Name(), v, nil
}

// Remaining returns the number of entries Next has not yet returned.
func (d *MapDecoder[T]) Remaining() int {
	return len(d.entries) - d.pos
}
