// SPDX-License-Identifier: MPL-2.0

// Package pvdb decodes pv_db style song databases into a catalogue of typed
// records keyed by their numeric identifier.
//
// A pv_db file is a flat list of key=value lines. Every record lives under a
// top-level key made of a fixed prefix and a decimal number:
//
//	pv_001.song_name=Example
//	pv_001.bpm=140
//	pv_002.song_name=Another
//
// Decoding happens in three steps. The input is first normalized: comment
// and malformed lines are dropped, the remaining lines are sorted and only
// the first line of each run sharing a key is kept. The normalized text is
// then handed to a tree decoder that yields one record per top-level key.
// Finally the records are collected into a Catalogue, with records whose
// key does not carry a valid identifier or whose fields cannot be decoded
// being skipped rather than failing the whole call.
//
// Only two conditions are fatal: unreadable input (ErrReadInput) and a tree
// decoder that cannot start (ErrOpenDecoder). Skipped records are silent by
// default; WithSkipSink and WithLogger expose them.
//
// Two record schemas ship with the package. Entry matches base pv_db.txt
// files and MdataEntry matches the sparser patch files, where most fields
// are optional.
package pvdb
