// SPDX-License-Identifier: MPL-2.0

package pvdb

import "sync"

const (
	// SkipDecodeError marks a record the tree decoder could not extract.
	SkipDecodeError SkipReason = "decode_error"
	// SkipKeyPattern marks a record whose key does not carry an identifier.
	SkipKeyPattern SkipReason = "key_pattern"
	// SkipOverwritten marks a record replaced by a later one with the same identifier.
	SkipOverwritten SkipReason = "overwritten"
)

type (
	// SkipReason explains why a record did not make it into the catalogue.
	SkipReason string

	// Skip describes one record dropped while building a catalogue.
	Skip struct {
		// Key is the top-level key of the record, when the decoder reported one.
		Key string
		// ID is the identifier parsed from Key. It is zero when Key does not
		// carry one.
		ID uint32
		Reason SkipReason
		// Err is the decoder error for SkipDecodeError and nil otherwise.
		Err error
	}

	// Diagnostics collects skipped records. It is safe for concurrent use.
	Diagnostics struct {
		mu    sync.Mutex
		skips []Skip
	}
)

// String returns the string representation of the SkipReason.
func (r SkipReason) String() string { return string(r) }

// Collect returns a sink suitable for WithSkipSink.
func (d *Diagnostics) Collect() func(Skip) {
	return func(s Skip) {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.skips = append(d.skips, s)
	}
}

// Skips returns the collected records in the order they were skipped.
func (d *Diagnostics) Skips() []Skip {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Skip, len(d.skips))
	copy(out, d.skips)
	return out
}

// Count returns how many records were skipped for reason.
func (d *Diagnostics) Count(reason SkipReason) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, s := range d.skips {
		if s.Reason == reason {
			n++
		}
	}
	return n
}

// Len returns the number of collected records.
func (d *Diagnostics) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.skips)
}
