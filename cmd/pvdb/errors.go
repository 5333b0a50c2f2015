// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"pvdb-cli/internal/issue"
	"pvdb-cli/internal/store"
	"pvdb-cli/pkg/pvdb"
	"pvdb-cli/pkg/types"

	"github.com/spf13/cobra"
)

// fail renders err on stderr and returns an ExitError that carries it.
// Cobra and fang are told not to print err a second time.
func (a *App) fail(cmd *cobra.Command, err error) error {
	return a.exit(cmd, types.ExitFailure, err)
}

func (a *App) exit(cmd *cobra.Command, code types.ExitCode, err error) error {
	renderError(a.stderr, err, a.verbose, a.glamourStyle())
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: code, Err: err}
}

// renderError prints err followed by the help page of its linked issue, if any.
func renderError(w io.Writer, err error, verbose bool, stylePath string) {
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	is, ok := issue.IssueOf(err)
	if !ok {
		return
	}
	rendered, renderErr := is.Render(stylePath)
	if renderErr != nil {
		fmt.Fprintln(w, VerboseStyle.Render(fmt.Sprintf("(cannot render help for issue %d: %v)", is.Id(), renderErr)))
		for _, link := range is.DocLinks() {
			fmt.Fprintln(w, "See also: "+string(link))
		}
		return
	}
	fmt.Fprint(w, rendered)
}

// inputError converts a pvdb read or decode failure for path into an
// actionable error.
func inputError(path string, err error) error {
	ec := issue.NewErrorContext().WithResource(path).Wrap(err)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		ec.WithOperation("read pv_db file").
			WithIssue(issue.InputNotFoundId).
			WithSuggestion("Check that the file exists and the path is spelled correctly")
	case errors.Is(err, pvdb.ErrReadInput):
		ec.WithOperation("read pv_db file").
			WithIssue(issue.InputNotFoundId).
			WithSuggestion("Check that the file is readable UTF-8 text")
	default:
		ec.WithOperation("decode pv_db file").
			WithIssue(issue.DecodeFailedId).
			WithSuggestions(
				"Run 'pvdb normalize " + path + "' to see the lines the decoder receives",
				"Look for a line whose key has no entry prefix, such as '=value' or '.bpm=120'",
			)
	}
	return ec.BuildError()
}

// storeError converts a store failure into an actionable error.
func storeError(op, path string, err error) error {
	ec := issue.NewErrorContext().
		WithOperation(op).
		WithResource(path).
		Wrap(err)
	if errors.Is(err, store.ErrNotFound) {
		return ec.WithIssue(issue.EntryNotFoundId).
			WithSuggestion("Run 'pvdb ids --db " + path + "' to list stored identifiers").
			BuildError()
	}
	return ec.WithIssue(issue.StoreFailedId).BuildError()
}

// entryNotFoundError reports an identifier missing from a decoded file.
func entryNotFoundError(path string, id uint32) error {
	return issue.NewErrorContext().
		WithOperation(fmt.Sprintf("show entry %d", id)).
		WithResource(path).
		WithIssue(issue.EntryNotFoundId).
		WithSuggestion("Run 'pvdb ids " + path + "' to list decoded identifiers").
		Wrap(fmt.Errorf("no entry with identifier %d", id)).
		BuildError()
}
