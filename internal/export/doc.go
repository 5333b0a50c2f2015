// SPDX-License-Identifier: MPL-2.0

// Package export writes decoded catalogues as JSON, YAML, TOML or a Go value
// dump. Every format lists the records in ascending identifier order as
// objects with an "id" and a "record" field.
package export
