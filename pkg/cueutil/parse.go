// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseResult holds a decoded document together with the unified CUE value
// it was decoded from.
type ParseResult[T any] struct {
	Value   *T
	Unified cue.Value
}

// Unify compiles schema and data, unifies data with the definition at
// schemaPath and validates the result.
func Unify(schema, data []byte, schemaPath string, opts ...Option) (cue.Value, error) {
	o := newParseOptions(opts)

	if err := CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return cue.Value{}, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if err := schemaValue.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("%w: compile: %w", ErrSchema, err)
	}
	def := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if err := def.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("%w: definition %s: %w", ErrSchema, schemaPath, err)
	}

	userValue := ctx.CompileBytes(data, cue.Filename(o.filename))
	if err := userValue.Err(); err != nil {
		return cue.Value{}, FormatError(err, o.filename)
	}

	unified := def.Unify(userValue)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return cue.Value{}, FormatError(err, o.filename)
	}
	return unified, nil
}

// ParseAndDecode validates data against the definition at schemaPath and
// decodes it into a T.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	o := newParseOptions(opts)

	unified, err := Unify(schema, data, schemaPath, opts...)
	if err != nil {
		return nil, err
	}

	var v T
	if err := unified.Decode(&v); err != nil {
		return nil, FormatError(err, o.filename)
	}
	return &ParseResult[T]{Value: &v, Unified: unified}, nil
}

// ParseAndDecodeString is ParseAndDecode with the schema given as a string.
func ParseAndDecodeString[T any](schema string, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	return ParseAndDecode[T]([]byte(schema), data, schemaPath, opts...)
}
