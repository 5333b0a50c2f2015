// SPDX-License-Identifier: MPL-2.0

package pvdb

import (
	"iter"
	"maps"
	"slices"
)

type (
	// Catalogue maps identifiers to records in ascending identifier order.
	// It is read-only once built.
	Catalogue[T any] struct {
		ids     []uint32
		records map[uint32]T
	}

	// CatalogueEntry pairs a record with its identifier.
	CatalogueEntry[T any] struct {
		ID     uint32 `json:"id"`
		Record T      `json:"record"`
	}
)

func newCatalogue[T any](records map[uint32]T) *Catalogue[T] {
	return &Catalogue[T]{
		ids:     slices.Sorted(maps.Keys(records)),
		records: records,
	}
}

// Len returns the number of records.
func (c *Catalogue[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

// Get returns the record with the given identifier.
func (c *Catalogue[T]) Get(id uint32) (T, bool) {
	if c == nil {
		var zero T
		return zero, false
	}
	rec, ok := c.records[id]
	return rec, ok
}

// IDs returns the identifiers in ascending order. The slice is a copy.
func (c *Catalogue[T]) IDs() []uint32 {
	if c == nil {
		return nil
	}
	return slices.Clone(c.ids)
}

// All iterates over the records in ascending identifier order.
func (c *Catalogue[T]) All() iter.Seq2[uint32, T] {
	return func(yield func(uint32, T) bool) {
		if c == nil {
			return
		}
		for _, id := range c.ids {
			if !yield(id, c.records[id]) {
				return
			}
		}
	}
}

// Entries returns the records paired with their identifiers in ascending
// identifier order.
func (c *Catalogue[T]) Entries() []CatalogueEntry[T] {
	if c == nil {
		return nil
	}
	out := make([]CatalogueEntry[T], 0, len(c.ids))
	for id, rec := range c.All() {
		out = append(out, CatalogueEntry[T]{ID: id, Record: rec})
	}
	return out
}
