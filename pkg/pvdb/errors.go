// SPDX-License-Identifier: MPL-2.0

package pvdb

import (
	"errors"
	"fmt"
)

var (
	// ErrReadInput is returned when the input file cannot be read as text.
	ErrReadInput = errors.New("cannot read input")
	// ErrOpenDecoder is returned when the tree decoder rejects the normalized input.
	ErrOpenDecoder = errors.New("cannot open decoder")
	// ErrInvalidFlag is returned when an integer-encoded boolean is not an integer.
	ErrInvalidFlag = errors.New("invalid flag")
	// ErrInvalidEnum is the sentinel error wrapped by InvalidEnumError.
	ErrInvalidEnum = errors.New("invalid enum value")
)

// InvalidEnumError is returned when a value is not one of an enum's names.
// It wraps ErrInvalidEnum for errors.Is() compatibility.
type InvalidEnumError struct {
	Kind  string
	Value string
}

// Error implements the error interface.
func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Value)
}

// Unwrap returns ErrInvalidEnum for errors.Is() compatibility.
func (e *InvalidEnumError) Unwrap() error { return ErrInvalidEnum }
