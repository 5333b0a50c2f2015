// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "config.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with the file path", func(t *testing.T) {
		t.Parallel()

		original := errors.New("disk on fire")
		err := FormatError(original, "config.cue")
		if !errors.Is(err, original) {
			t.Errorf("error should wrap the original, got %v", err)
		}
		if !strings.HasPrefix(err.Error(), "config.cue: ") {
			t.Errorf("error should start with the file path, got %q", err.Error())
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{name: "empty path", path: nil, expected: ""},
		{name: "single element", path: []string{"decode"}, expected: "decode"},
		{name: "nested path", path: []string{"decode", "schema"}, expected: "decode.schema"},
		{name: "array index", path: []string{"items", "0", "name"}, expected: "items[0].name"},
		{name: "leading number is a field", path: []string{"0", "name"}, expected: "0.name"},
		{name: "consecutive indices", path: []string{"grid", "1", "2"}, expected: "grid[1][2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "empty", size: 0},
		{name: "within limit", size: 10},
		{name: "at limit", size: 100},
		{name: "over limit", size: 101, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileSize(make([]byte, tt.size), 100, "big.cue")
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFileSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrFileTooLarge) {
				t.Errorf("error should wrap ErrFileTooLarge, got %v", err)
			}
			if !strings.Contains(err.Error(), "big.cue") || !strings.Contains(err.Error(), "101") {
				t.Errorf("error should name the file and size, got %v", err)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    *ValidationError
		expect string
	}{
		{
			name:   "no issues",
			err:    &ValidationError{FilePath: "config.cue"},
			expect: "config.cue: invalid document",
		},
		{
			name: "single issue with path",
			err: &ValidationError{
				FilePath: "config.cue",
				Issues:   []FieldIssue{{Path: "decode.schema", Message: "conflicting values"}},
			},
			expect: "config.cue: decode.schema: conflicting values",
		},
		{
			name: "single issue without path",
			err: &ValidationError{
				FilePath: "config.cue",
				Issues:   []FieldIssue{{Message: "expected operand"}},
			},
			expect: "config.cue: expected operand",
		},
		{
			name: "several issues",
			err: &ValidationError{
				FilePath: "config.cue",
				Issues: []FieldIssue{
					{Path: "a", Message: "one"},
					{Path: "b", Message: "two"},
				},
			},
			expect: "config.cue: validation failed:\n  a: one\n  b: two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expect {
				t.Errorf("Error() = %q, want %q", got, tt.expect)
			}
			if !errors.Is(tt.err, ErrInvalidDocument) {
				t.Error("ValidationError should wrap ErrInvalidDocument")
			}
		})
	}
}
