// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

var (
	// ErrSchema is returned when the embedded schema itself is broken.
	ErrSchema = errors.New("internal error: invalid schema")
	// ErrInvalidDocument is the sentinel error wrapped by ValidationError.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrFileTooLarge is returned when a document exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")
)

type (
	// FieldIssue is one problem found in a document.
	FieldIssue struct {
		// Path locates the field, such as "decode.schema" or "items[0].name".
		// It is empty for problems not tied to a field, like syntax errors.
		Path    string
		Message string
	}

	// ValidationError lists the problems found in a document.
	// It wraps ErrInvalidDocument for errors.Is() compatibility.
	ValidationError struct {
		FilePath string
		Issues   []FieldIssue
	}
)

// Error implements the error interface.
func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Path != "" {
			lines = append(lines, is.Path+": "+is.Message)
		} else {
			lines = append(lines, is.Message)
		}
	}
	switch len(lines) {
	case 0:
		return e.FilePath + ": " + ErrInvalidDocument.Error()
	case 1:
		return e.FilePath + ": " + lines[0]
	default:
		return fmt.Sprintf("%s: validation failed:\n  %s", e.FilePath, strings.Join(lines, "\n  "))
	}
}

// Unwrap returns ErrInvalidDocument for errors.Is() compatibility.
func (e *ValidationError) Unwrap() error { return ErrInvalidDocument }

// FormatError converts a CUE error into a *ValidationError naming each
// offending field. A non-CUE error is wrapped with the file path.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	verr := &ValidationError{FilePath: filePath}
	for _, e := range list {
		path := formatPath(cueerrors.Path(e))
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		verr.Issues = append(verr.Issues, FieldIssue{Path: path, Message: msg})
	}
	return verr
}

// formatPath renders a CUE error path, writing numeric segments as indices:
// ["items", "0", "name"] becomes "items[0].name".
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			b.WriteString("[" + part + "]")
		case i > 0:
			b.WriteString("." + part)
		default:
			b.WriteString(part)
		}
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize returns an error wrapping ErrFileTooLarge when data is
// longer than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: %w: %d bytes exceeds the %d byte limit", filename, ErrFileTooLarge, len(data), maxSize)
	}
	return nil
}
