// SPDX-License-Identifier: MPL-2.0

// Package config loads pvdb settings.
//
// Built-in defaults are overlaid by a CUE file validated against the
// embedded #Config schema, then by PVDB_* environment variables. The merged
// result is validated with the IsValid methods of its typed fields.
package config
