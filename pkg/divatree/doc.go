// SPDX-License-Identifier: MPL-2.0

// Package divatree reads the flat "divatree" text format and extracts typed
// values from it.
//
// A divatree document is a list of lines of the form
//
//	pv_001.song_name=Example
//	pv_001.difficulty.easy.0.level=PV_LV_03_0
//	pv_001.difficulty.easy.length=1
//
// Keys are dot-separated paths. Path segments that are decimal numbers are
// array indices and a sibling "length" segment bounds the array size.
// Values are kept as raw strings until extraction, where the target Go type
// decides how they are read.
//
// # Extraction
//
// Unmarshal decodes a tree node into a Go value using mapstructure tags.
// Numbers are parsed in base 10, types implementing encoding.TextUnmarshaler
// receive the raw value, and branches are turned into slices when the target
// is a slice. Fields tagged `divatree:"required"` must be present; any other
// missing field keeps its zero value and unknown keys are ignored.
//
// # Streaming top-level entries
//
// MapDecoder parses a document once and then yields its top-level entries
// one at a time. A failure to extract one entry, or a line that conflicts
// with another line of the same entry, is reported for that entry only and
// the next call to Next moves on to the following entry.
package divatree
