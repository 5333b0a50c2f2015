// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"

	"cuelang.org/go/cue"
)

const testSchema = `
#Settings: {
	name:   string
	count:  int & >=0
	mode:   "fast" | "slow"
	label?: string
	items?: [...{id: int}]
}
`

type testSettings struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Mode  string `json:"mode"`
	Label string `json:"label,omitempty"`
	Items []struct {
		ID int `json:"id"`
	} `json:"items,omitempty"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid document decodes", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
name:  "pvdb"
count: 3
mode:  "fast"
items: [{id: 1}, {id: 2}]
`)
		res, err := ParseAndDecode[testSettings]([]byte(testSchema), data, "#Settings")
		if err != nil {
			t.Fatalf("ParseAndDecode() error = %v", err)
		}
		if res.Value.Name != "pvdb" || res.Value.Count != 3 || res.Value.Mode != "fast" {
			t.Errorf("unexpected value %+v", *res.Value)
		}
		if len(res.Value.Items) != 2 || res.Value.Items[1].ID != 2 {
			t.Errorf("items not decoded: %+v", res.Value.Items)
		}
		if !res.Unified.Exists() {
			t.Error("unified value should be set")
		}
	})

	t.Run("optional field can be omitted", func(t *testing.T) {
		t.Parallel()

		res, err := ParseAndDecodeString[testSettings](testSchema, []byte(`name: "x", count: 0, mode: "slow"`), "#Settings")
		if err != nil {
			t.Fatalf("ParseAndDecodeString() error = %v", err)
		}
		if res.Value.Label != "" {
			t.Errorf("Label = %q, want empty", res.Value.Label)
		}
	})

	t.Run("constraint violation names the field", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testSettings]([]byte(testSchema),
			[]byte(`name: "x", count: -1, mode: "fast"`), "#Settings", WithFilename("settings.cue"))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if verr.FilePath != "settings.cue" {
			t.Errorf("FilePath = %q, want settings.cue", verr.FilePath)
		}
		if !strings.Contains(err.Error(), "count") {
			t.Errorf("error should mention the field, got %v", err)
		}
	})

	t.Run("disjunction mismatch fails", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testSettings]([]byte(testSchema),
			[]byte(`name: "x", count: 1, mode: "medium"`), "#Settings")
		if !errors.Is(err, ErrInvalidDocument) {
			t.Errorf("expected ErrInvalidDocument, got %v", err)
		}
	})

	t.Run("closed definition rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testSettings]([]byte(testSchema),
			[]byte(`name: "x", count: 1, mode: "fast", extra: true`), "#Settings")
		if err == nil {
			t.Fatal("expected error for unknown field")
		}
	})

	t.Run("missing field fails when concrete", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testSettings]([]byte(testSchema), []byte(`name: "x", mode: "fast"`), "#Settings")
		if err == nil {
			t.Fatal("expected error for incomplete document")
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testSettings]([]byte(testSchema), []byte(`name: "x`), "#Settings")
		if err == nil {
			t.Fatal("expected syntax error")
		}
	})

	t.Run("oversized document", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testSettings]([]byte(testSchema), []byte(`name: "abcdef"`), "#Settings", WithMaxFileSize(4))
		if !errors.Is(err, ErrFileTooLarge) {
			t.Errorf("expected ErrFileTooLarge, got %v", err)
		}
	})

	t.Run("broken schema is an internal error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testSettings]([]byte(`#Settings: {`), []byte(`name: "x"`), "#Settings")
		if !errors.Is(err, ErrSchema) {
			t.Errorf("expected ErrSchema, got %v", err)
		}
	})

	t.Run("unknown definition is an internal error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testSettings]([]byte(testSchema), []byte(`name: "x"`), "#Missing")
		if !errors.Is(err, ErrSchema) {
			t.Errorf("expected ErrSchema, got %v", err)
		}
	})
}

func TestUnify_NonConcrete(t *testing.T) {
	t.Parallel()

	v, err := Unify([]byte(testSchema), []byte(`name: "partial"`), "#Settings", WithConcrete(false))
	if err != nil {
		t.Fatalf("Unify() error = %v", err)
	}

	name, err := v.LookupPath(cue.ParsePath("name")).String()
	if err != nil || name != "partial" {
		t.Errorf("name lookup = %q, %v", name, err)
	}
}
