// SPDX-License-Identifier: MPL-2.0

package migrations

import "embed"

// FS contains the embedded SQLite migrations of the catalogue store.
//
//go:embed *.sql
var FS embed.FS
