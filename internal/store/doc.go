// SPDX-License-Identifier: MPL-2.0

// Package store persists decoded catalogues in SQLite.
//
// Each record is stored as one row keyed by its identifier. The headline
// fields of its Summary get their own columns and the full record is kept
// as a JSON payload. Importing again upserts, so the latest import of an
// identifier wins.
package store
