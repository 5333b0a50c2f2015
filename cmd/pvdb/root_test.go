// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"pvdb-cli/internal/issue"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2026-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2026-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"

		if got, want := getVersionString(), "dev (built from source)"; got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, true); got != "plain failure" {
		t.Errorf("plain error = %q, want %q", got, "plain failure")
	}

	actionable := issue.NewErrorContext().
		WithOperation("decode pv_db file").
		WithResource("pv_db.txt").
		WithSuggestion("Try again").
		Wrap(plain).
		BuildError()

	got := formatErrorForDisplay(&ExitError{Code: 1, Err: actionable}, false)
	if !strings.HasPrefix(got, "failed to decode pv_db file: pv_db.txt: plain failure") {
		t.Errorf("actionable error = %q", got)
	}
	if !strings.Contains(got, "• Try again") {
		t.Errorf("actionable error should list suggestions, got %q", got)
	}
	if strings.Contains(got, "Error chain:") {
		t.Error("non-verbose output should not include the error chain")
	}

	if got := formatErrorForDisplay(actionable, true); !strings.Contains(got, "Error chain:") {
		t.Errorf("verbose output should include the error chain, got %q", got)
	}
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	t.Parallel()

	app, err := NewApp(Dependencies{})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	root := NewRootCommand(app)

	for _, name := range []string{"decode", "ids", "show", "normalize", "import", "config"} {
		if sub, _, err := root.Find([]string{name}); err != nil || sub.Name() != name {
			t.Errorf("subcommand %q not registered (err: %v)", name, err)
		}
	}
	for _, flag := range []string{"verbose", "config"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s not registered", flag)
		}
	}
}
