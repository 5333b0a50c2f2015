// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema and
// decodes them into Go values.
//
// Every caller follows the same three steps: compile the schema, unify the
// user document with one of its definitions, then validate and decode the
// result. Errors are reported with the offending field path so users can
// find the problem in their file:
//
//	//go:embed config_schema.cue
//	var schema string
//
//	res, err := cueutil.ParseAndDecodeString[map[string]any](schema, data, "#Config",
//	    cueutil.WithFilename(path),
//	    cueutil.WithConcrete(false),
//	)
package cueutil
