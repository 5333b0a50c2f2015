// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"unicode/utf8"

	"pvdb-cli/pkg/pvdb"

	"github.com/spf13/cobra"
)

func newNormalizeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <file>",
		Short: "Print the lines the decoder receives",
		Long: `Print a pv_db file the way the decoder sees it.

Lines without '=' and comment lines are dropped, the rest are sorted
and only the first line of each key is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return app.fail(cmd, inputError(path, fmt.Errorf("%w: %w", pvdb.ErrReadInput, err)))
			}
			if !utf8.Valid(data) {
				return app.fail(cmd, inputError(path, fmt.Errorf("%w: %s is not valid UTF-8", pvdb.ErrReadInput, path)))
			}

			out := pvdb.Normalize(string(data), pvdb.WithCommentMarker(string(app.cfg.Decode.CommentMarker)))
			if out == "" {
				return nil
			}
			fmt.Fprintln(app.stdout, out)
			return nil
		},
	}
}
