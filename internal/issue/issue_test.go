// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func allIds() []Id {
	return []Id{
		InputNotFoundId,
		DecodeFailedId,
		ConfigLoadFailedId,
		EntryNotFoundId,
		InvalidIdentifierId,
		StoreFailedId,
	}
}

func TestId_Constants(t *testing.T) {
	t.Parallel()

	seen := make(map[Id]bool)
	for _, id := range allIds() {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if InputNotFoundId != 1 {
		t.Errorf("InputNotFoundId = %d, want 1", InputNotFoundId)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{InputNotFoundId, false, "Input file not found"},
		{DecodeFailedId, false, "could not be decoded"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{EntryNotFoundId, false, "Entry not found"},
		{InvalidIdentifierId, false, "Invalid identifier"},
		{StoreFailedId, false, "Store operation failed"},
		{Id(9999), true, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			t.Parallel()

			is := Get(tt.id)
			if tt.wantNil {
				if is != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}
			if is == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if is.Id() != tt.id {
				t.Errorf("Id() = %d, want %d", is.Id(), tt.id)
			}
			if !strings.Contains(string(is.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain %q", tt.id, tt.contains)
			}
		})
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != len(allIds()) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(allIds()))
	}
	for i, is := range values {
		if is.Id() != allIds()[i] {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, is.Id(), allIds()[i])
		}
		if is.MarkdownMsg() == "" {
			t.Errorf("issue %d has an empty message", is.Id())
		}
	}
}

func TestIssue_DocLinksIsCopy(t *testing.T) {
	t.Parallel()

	is := Get(DecodeFailedId)
	links := is.DocLinks()
	if len(links) == 0 {
		t.Fatal("DecodeFailedId should carry doc links")
	}
	links[0] = "changed"
	if is.DocLinks()[0] == "changed" {
		t.Error("DocLinks() should return a copy")
	}
}

func TestIssue_Markdown(t *testing.T) {
	t.Parallel()

	withLinks := &Issue{
		id:       Id(9999),
		mdMsg:    "# Test Issue",
		docLinks: []HttpLink{"https://docs.example.com"},
	}
	got := withLinks.Markdown()
	if !strings.Contains(got, "## See also") || !strings.Contains(got, "<https://docs.example.com>") {
		t.Errorf("Markdown() = %q, want a See also section", got)
	}

	noLinks := &Issue{id: Id(9998), mdMsg: "# Test Issue"}
	if got := noLinks.Markdown(); got != "# Test Issue" {
		t.Errorf("Markdown() = %q, want the message unchanged", got)
	}
}

func TestIssue_Render(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	var gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotStyle = stylePath
		return in, nil
	}

	for _, is := range Values() {
		rendered, err := is.Render("notty")
		if err != nil {
			t.Errorf("issue %d failed to render: %v", is.Id(), err)
		}
		if rendered == "" {
			t.Errorf("issue %d rendered to empty string", is.Id())
		}
	}
	if gotStyle != "notty" {
		t.Errorf("render got style %q, want %q", gotStyle, "notty")
	}
}
