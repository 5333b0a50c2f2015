// SPDX-License-Identifier: MPL-2.0

package divatree

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is the sentinel error wrapped by SyntaxError.
	ErrSyntax = errors.New("divatree syntax error")
	// ErrMissingField is the sentinel error wrapped by FieldError.
	ErrMissingField = errors.New("required field is missing")
	// ErrInvalidTarget is returned when Unmarshal receives something other than a non-nil pointer.
	ErrInvalidTarget = errors.New("decode target must be a non-nil pointer")
)

type (
	// SyntaxError reports a line that cannot be placed into the tree.
	// Parse fails the whole document with it. MapDecoder reports it for the
	// one entry the line belongs to when it can.
	SyntaxError struct {
		// Line is the 1-based line number in the parsed text.
		Line int
		// Key is the key portion of the offending line (may be empty).
		Key string
		// Reason describes what is wrong with the line.
		Reason string
	}

	// FieldError reports a required field that is absent from a node.
	FieldError struct {
		// Path is the dotted path of the field relative to the decoded node.
		Path string
	}

	// EntryError reports a top-level entry that could not be extracted.
	// MapDecoder returns it from Next and continues with the next entry.
	EntryError struct {
		// Key is the top-level key of the entry.
		Key string
		// Err is the underlying extraction error.
		Err error
	}
)

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("line %d: key %q: %s", e.Line, e.Key, e.Reason)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Unwrap returns ErrSyntax for errors.Is() compatibility.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, ErrMissingField.Error())
}

// Unwrap returns ErrMissingField for errors.Is() compatibility.
func (e *FieldError) Unwrap() error { return ErrMissingField }

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying extraction error.
func (e *EntryError) Unwrap() error { return e.Err }
