// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"pvdb-cli/internal/config"
	"pvdb-cli/internal/export"
	"pvdb-cli/pkg/pvdb"
	"pvdb-cli/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

type decodeRequest struct {
	path   string
	format config.OutputFormat
	report bool
	strict bool
}

func newDecodeCommand(app *App) *cobra.Command {
	var (
		format string
		schema string
		report bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a pv_db file into a catalogue",
		Long: `Decode a pv_db file and print the resulting catalogue.

Entries that fail to decode, keys without an identifier and entries
overwritten by a later duplicate are skipped. Use --report to list them
on stderr, and --strict to exit with status 3 when any were skipped.

Formats:
  table   Summary table (default)
  json    Indented JSON list of {id, record}
  yaml    YAML list of {id, record}
  toml    TOML [[entries]] array tables
  dump    Go value dump`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.resolveSchema(schema)
			if err != nil {
				return app.fail(cmd, err)
			}
			req := decodeRequest{path: args[0], format: app.cfg.Output.Format, report: report, strict: strict}
			if format != "" {
				req.format = config.OutputFormat(format)
			}
			if valid, errs := req.format.IsValid(); !valid {
				return app.fail(cmd, errs[0])
			}

			var skipped int
			switch s {
			case config.SchemaMdata:
				skipped, err = runDecode[pvdb.MdataEntry](app, req)
			default:
				skipped, err = runDecode[pvdb.Entry](app, req)
			}
			if err != nil {
				return app.fail(cmd, err)
			}
			if req.strict && skipped > 0 {
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
				return &ExitError{Code: types.ExitSkipped}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: table, json, yaml, toml or dump (default from config)")
	addSchemaFlag(cmd, &schema)
	cmd.Flags().BoolVar(&report, "report", false, "list skipped entries on stderr")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with status 3 when entries were skipped")

	return cmd
}

// runDecode decodes req.path and prints the catalogue. It returns the
// number of skipped entries.
func runDecode[T record](app *App, req decodeRequest) (int, error) {
	var diags pvdb.Diagnostics
	cat, err := loadCatalogue[T](app, req.path, pvdb.WithSkipSink(diags.Collect()))
	if err != nil {
		return 0, err
	}

	if req.format == config.FormatTable {
		writeTable(app.stdout, cat)
	} else if err := export.Write(app.stdout, export.Format(req.format), cat); err != nil {
		return 0, fmt.Errorf("write %s: %w", req.format, err)
	}

	if req.report {
		writeReport(app.stderr, &diags)
	}
	return diags.Len(), nil
}

// writeTable prints a summary row per entry.
func writeTable[T record](w io.Writer, cat *pvdb.Catalogue[T]) {
	if cat.Len() == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("No entries decoded."))
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers("ID", "SONG", "SONG (EN)", "BPM", "DATE", "CHARTS")

	for id, rec := range cat.All() {
		s := rec.Summary()
		t.Row(
			strconv.FormatUint(uint64(id), 10),
			s.SongName,
			s.SongNameEn,
			optionalInt(s.BPM),
			optionalInt(s.Date),
			strconv.Itoa(s.Charts),
		)
	}

	fmt.Fprintln(w, t.String())
	fmt.Fprintln(w, SubtitleStyle.Render(fmt.Sprintf("%d entries", cat.Len())))
}

// writeReport lists skipped entries.
func writeReport(w io.Writer, diags *pvdb.Diagnostics) {
	skips := diags.Skips()
	if len(skips) == 0 {
		fmt.Fprintln(w, SuccessStyle.Render("✓")+" No entries skipped")
		return
	}

	fmt.Fprintln(w, WarningStyle.Render(fmt.Sprintf("%d entries skipped:", len(skips))))
	for _, sk := range skips {
		key := sk.Key
		if key == "" {
			key = "(no key)"
		}
		line := fmt.Sprintf("  %s %s", CmdStyle.Render(key), VerboseStyle.Render(sk.Reason.String()))
		if sk.Err != nil {
			line += ": " + sk.Err.Error()
		}
		fmt.Fprintln(w, line)
	}
}

func optionalInt(v *int32) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(int64(*v), 10)
}
